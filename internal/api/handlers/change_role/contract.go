package change_role

import (
	"context"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	"github.com/pbp-kelompok-b10/any-venue/internal/service/profiles"
)

//go:generate mockery --name=ProfileService --output=mocks --outpkg=mocks

type ProfileService interface {
	ChangeRole(ctx context.Context, userID int64, role domain.Role) (*profiles.ChangeRoleResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
