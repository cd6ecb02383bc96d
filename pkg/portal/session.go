package portal

import "context"

// Session is the authenticated identity attached to a request by the auth
// middleware. Role stays a plain string here so the package keeps no
// knowledge of the persistence layer.
type Session struct {
	UserID   uint64
	UserUUID string
	Email    string
	Name     string
	Role     string
}

func WithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, SessionKey, session)
}

func GetSession(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(SessionKey).(Session)

	return session, ok
}
