package services

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/validation"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryReader
}

func NewCategoryService(repo portsrepo.CategoryReader, options ...ServiceOption) portssvc.CategorySvcFacade {
	return &categoryService{
		BaseService:  newBaseService(options...),
		categoryRepo: repo,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) GetPaginatedCategories(ctx context.Context, userID string, req *dto.PaginationRequest) (domain.Paginated[domain.CategoryDTO], error) {
	return WithAuth(s.getPaginatedCategories)(ctx, userID, req)
}

func (s *categoryService) getPaginatedCategories(ctx context.Context, userID string, req dto.PaginationRequest) (domain.Paginated[domain.CategoryDTO], error) {
	if err := validation.Parse(&req); err != nil {
		return domain.Paginated[domain.CategoryDTO]{}, err
	}
	return s.categoryRepo.GetPaginated(ctx, userID, req.ToParams())
}
