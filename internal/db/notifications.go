package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Notify appends a notification event for a user. Events are append-only;
// delivery is owned by a separate subsystem.
func (db *DB) Notify(ctx context.Context, userID uuid.UUID, kind, title, content string, data map[string]any) error {
	var dataJSON []byte
	if data != nil {
		var err error
		dataJSON, err = json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal notification data: %w", err)
		}
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO notifications (user_id, type, title, content, data, read)
		 VALUES ($1, $2, $3, $4, $5, false)`,
		userID, kind, title, content, dataJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}
