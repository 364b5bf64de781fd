package models

type Todo struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Completed  bool   `json:"completed"`
	UserID     *int64 `json:"user_id"`
	CategoryID *int64 `json:"category_id"`

	// Filled from the users and categories joins, nil when the
	// reference is empty or points to a missing row.
	Username     *string `json:"username"`
	CategoryName *string `json:"category_name"`
}
