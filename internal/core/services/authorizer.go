package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
)

// companyAuthorizer enforces tenant isolation and the role ladder.
// A super admin may act on any company; everyone else only on their own.
type companyAuthorizer struct{}

var defaultAuthorizer portssvc.CompanyAuthorizerSvc = companyAuthorizer{}

// NewCompanyAuthorizer returns the standard company authorizer.
func NewCompanyAuthorizer() portssvc.CompanyAuthorizerSvc {
	return companyAuthorizer{}
}

func (companyAuthorizer) AuthorizeUserAction(_ context.Context, actor domain.Actor, companyID string, requiredRole domain.Role) error {
	if strings.TrimSpace(companyID) == "" {
		return fmt.Errorf("%w: company ID is required", apperrors.ErrValidation)
	}
	if actor.UserID == "" || actor.Role.Rank() == 0 {
		return fmt.Errorf("%w: no authenticated actor", apperrors.ErrUnauthorized)
	}
	if actor.Role != domain.RoleSuperAdmin && actor.CompanyID != companyID {
		return fmt.Errorf("%w: user %s does not belong to company %s", apperrors.ErrForbidden, actor.UserID, companyID)
	}
	if actor.Role.Rank() < requiredRole.Rank() {
		return fmt.Errorf("%w: role %s is required", apperrors.ErrForbidden, requiredRole)
	}
	return nil
}
