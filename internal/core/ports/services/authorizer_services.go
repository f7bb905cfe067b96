package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// CompanyAuthorizerSvc decides whether an already-authenticated actor may act on a company.
type CompanyAuthorizerSvc interface {
	// AuthorizeUserAction returns apperrors.ErrForbidden when the actor belongs to another
	// company or holds a role below requiredRole.
	AuthorizeUserAction(ctx context.Context, actor domain.Actor, companyID string, requiredRole domain.Role) error
}
