package browsing

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

type BrowsingService interface {
	ListCompanies(ctx context.Context, query domain.CompanyListingQuery) (*domain.CompanyListing, error)
	GetCompany(ctx context.Context, companyDomain string) (*domain.CompanyDetail, error)
	GetPerson(ctx context.Context, rawID string) (*domain.PersonDetail, error)
	FilterOptions() domain.FilterOptions
}

type Service struct {
	companyRepository repository.CompanyRepository
	personRepository  repository.PersonRepository
	consumerDomains   domain.ConsumerDomains
	pageSize          int
	now               func() time.Time
}

func NewService(
	companyRepository repository.CompanyRepository,
	personRepository repository.PersonRepository,
	cfg *config.Config,
) BrowsingService {
	return &Service{
		companyRepository: companyRepository,
		personRepository:  personRepository,
		consumerDomains:   cfg.ConsumerDomainSet(),
		pageSize:          cfg.Listing.PageSize,
		now:               time.Now,
	}
}

func (s *Service) ListCompanies(ctx context.Context, query domain.CompanyListingQuery) (*domain.CompanyListing, error) {
	page, err := s.companyRepository.ListCompanies(ctx, query, s.pageSize)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPagination) {
			return nil, NewBrowsingError(err, apiErrors.ErrInvalidPagination, "Página inválida")
		}

		log.ForContext(ctx).WithError(err).Error("Erro ao listar empresas no repositório")
		return nil, NewBrowsingError(ErrListCompanies, apiErrors.ErrDatabaseOperation, "Falha ao listar empresas no banco de dados")
	}

	return domain.NewCompanyListing(query, page), nil
}

func (s *Service) GetCompany(ctx context.Context, companyDomain string) (*domain.CompanyDetail, error) {
	companyDomain = strings.ToLower(strings.TrimSpace(companyDomain))
	if companyDomain == "" {
		return nil, NewBrowsingError(ErrCompanyNotFound, apiErrors.ErrCompanyNotFound, "Empresa não encontrada")
	}

	company, orders, err := s.companyRepository.GetByDomain(ctx, companyDomain)
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("Erro ao buscar empresa %s", companyDomain)
		return nil, NewBrowsingErrorWithResource(ErrFetchCompany, apiErrors.ErrDatabaseOperation, companyDomain, "Falha ao buscar empresa no banco de dados")
	}

	if company == nil {
		return nil, NewBrowsingErrorWithResource(ErrCompanyNotFound, apiErrors.ErrCompanyNotFound, companyDomain, "Empresa não encontrada")
	}

	return domain.NewCompanyDetail(*company, orders, s.consumerDomains), nil
}

// GetPerson aceita o id cru da rota; ids não numéricos são tratados como inexistentes
func (s *Service) GetPerson(ctx context.Context, rawID string) (*domain.PersonDetail, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil || id <= 0 {
		return nil, NewBrowsingErrorWithResource(ErrPersonNotFound, apiErrors.ErrPersonNotFound, rawID, "Pessoa não encontrada")
	}

	person, orders, err := s.personRepository.GetByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("Erro ao buscar pessoa %d", id)
		return nil, NewBrowsingErrorWithResource(ErrFetchPerson, apiErrors.ErrDatabaseOperation, rawID, "Falha ao buscar pessoa no banco de dados")
	}

	if person == nil {
		return nil, NewBrowsingErrorWithResource(ErrPersonNotFound, apiErrors.ErrPersonNotFound, rawID, "Pessoa não encontrada")
	}

	return domain.NewPersonDetail(*person, orders), nil
}

func (s *Service) FilterOptions() domain.FilterOptions {
	return domain.NewFilterOptions(s.now(), s.pageSize)
}
