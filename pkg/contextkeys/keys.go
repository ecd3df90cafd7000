package contextkeys

type contextKey string

// UserIDKey holds the authenticated admin's user id in the request context.
const UserIDKey contextKey = "userID"
