package api

import "fmt"

// DefaultNamespace префикс топиков брокера
const DefaultNamespace = "heji"

// UserTopic builds "{ns}/user/{userId}/sync".
func UserTopic(ns, userID string) string {
	return fmt.Sprintf("%s/user/%s/sync", ns, userID)
}

// BookTopic builds "{ns}/book/{bookId}/sync".
func BookTopic(ns, bookID string) string {
	return fmt.Sprintf("%s/book/%s/sync", ns, bookID)
}
