package models

// TodoDetail is a row of todo_details keyed by column name. The table is
// maintained outside of this service, so its columns are not fixed here.
type TodoDetail map[string]any
