package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"research-admin/internal/directory"
	"research-admin/internal/dto"
	"research-admin/internal/repositories"
	"research-admin/pkg/types"
)

const directoryFacetsCacheKey = "directory:facets"

// DirectoryQuery is one public directory request: the filter criteria plus
// the page to render.
type DirectoryQuery struct {
	Criteria       directory.Criteria
	SortDescending bool
	Page           int
	PageSize       int
	WithFacets     bool
}

type DirectoryServiceInterface interface {
	QueryLabs(ctx context.Context, q DirectoryQuery) (*dto.DirectoryPageDTO, error)
	GetFacets(ctx context.Context) (*dto.DirectoryFacetsDTO, error)
}

// DirectoryService runs the public lab directory pipeline: fetch the whole
// collection, filter, sort and paginate in memory, and derive facets for the
// filter UI. Facets are cached briefly since they only change on admin
// writes.
type DirectoryService struct {
	labRepository repositories.LabRepositoryInterface
	cache         repositories.CacheRepositoryInterface
	facetTTL      time.Duration
	logger        *zap.Logger
}

func NewDirectoryService(
	labRepository repositories.LabRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	facetTTL time.Duration,
	logger *zap.Logger,
) DirectoryServiceInterface {
	return &DirectoryService{
		labRepository: labRepository,
		cache:         cache,
		facetTTL:      facetTTL,
		logger:        logger,
	}
}

func (s *DirectoryService) QueryLabs(ctx context.Context, q DirectoryQuery) (*dto.DirectoryPageDTO, error) {
	labs, err := s.labRepository.GetAllLabs(ctx)
	if err != nil {
		return nil, err
	}

	filtered := directory.FilterLabs(labs, q.Criteria)
	sorted := directory.SortLabsByName(filtered, q.SortDescending)
	page, total := directory.Paginate(sorted, q.Page, q.PageSize)

	result := &dto.DirectoryPageDTO{
		Labs: make([]dto.LabDTO, 0, len(page)),
		Pagination: types.Pagination{
			TotalCount: uint64(total),
			Page:       q.Page,
			Limit:      q.PageSize,
			TotalPages: totalPages(total, q.PageSize),
		},
	}
	for _, lab := range page {
		result.Labs = append(result.Labs, MapLabToDTO(lab))
	}

	if q.WithFacets {
		facets, err := s.GetFacets(ctx)
		if err != nil {
			// The page is still renderable without facets; log and move on.
			s.logger.Warn("failed to compute directory facets", zap.Error(err))
		} else {
			result.Facets = facets
		}
	}

	return result, nil
}

func (s *DirectoryService) GetFacets(ctx context.Context) (*dto.DirectoryFacetsDTO, error) {
	if cached := s.facetsFromCache(ctx); cached != nil {
		return cached, nil
	}

	labs, err := s.labRepository.GetAllLabs(ctx)
	if err != nil {
		return nil, err
	}

	counts := directory.EquipmentTagCounts(labs)
	facets := &dto.DirectoryFacetsDTO{
		LabTypes:  directory.LabTypes(labs),
		Equipment: make([]dto.EquipmentFacetDTO, 0, len(counts)),
	}
	for _, tag := range directory.EquipmentTags(labs) {
		facets.Equipment = append(facets.Equipment, dto.EquipmentFacetDTO{
			Tag:   tag,
			Count: counts[tag],
		})
	}

	s.facetsToCache(ctx, facets)
	return facets, nil
}

func (s *DirectoryService) facetsFromCache(ctx context.Context) *dto.DirectoryFacetsDTO {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, directoryFacetsCacheKey)
	if err != nil || raw == "" {
		return nil
	}
	var facets dto.DirectoryFacetsDTO
	if err := json.Unmarshal([]byte(raw), &facets); err != nil {
		s.logger.Warn("corrupt facet cache entry, dropping", zap.Error(err))
		_ = s.cache.Del(ctx, directoryFacetsCacheKey)
		return nil
	}
	return &facets
}

func (s *DirectoryService) facetsToCache(ctx context.Context, facets *dto.DirectoryFacetsDTO) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(facets)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, directoryFacetsCacheKey, string(raw), s.facetTTL); err != nil {
		s.logger.Warn("failed to cache directory facets", zap.Error(err))
	}
}

func totalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
