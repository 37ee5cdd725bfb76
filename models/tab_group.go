package models

import "time"

// TabGroup is a named set of URLs opened together by a single trigger.
// Its trigger shares the owner's namespace with custom bangs.
type TabGroup struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Trigger   string    `json:"trigger"`
	Title     string    `json:"title"`
	Items     []TabItem `json:"items"`
	CreatedAt time.Time `json:"created_at"`
}

// TabItem is one URL of a TabGroup. Items keep the order they were added in.
type TabItem struct {
	ID       int64  `json:"id"`
	GroupID  int64  `json:"group_id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}
