package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID     ctxKey = "user_id"
	CtxKeyUserName   ctxKey = "user_name"
	CtxKeyRole       ctxKey = "role"
	CtxKeyDepartment ctxKey = "department"
)

// UserIDFromCtx returns the authenticated user's ID, or "" when anonymous.
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// RoleFromCtx returns the authenticated user's role, or "" when anonymous.
func RoleFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		return v
	}
	return ""
}

// DepartmentFromCtx returns the authenticated user's department, or "".
func DepartmentFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyDepartment).(string); ok {
		return v
	}
	return ""
}
