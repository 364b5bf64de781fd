package models

import "time"

type TodoLog struct {
	ID        int64     `json:"id"`
	TodoID    int64     `json:"todo_id"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}
