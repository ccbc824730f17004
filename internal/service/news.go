package service

import (
	"context"
	"fmt"

	"github.com/alexivanou/worldinfo-api/internal/cache"
	"github.com/alexivanou/worldinfo-api/internal/model"
	"github.com/alexivanou/worldinfo-api/internal/observability"
	"github.com/alexivanou/worldinfo-api/internal/provider"
	"go.uber.org/zap"
)

// Headlines returns the current headline list for a country through the
// ephemeral cache. The list is never read from the relational store; stored
// news rows are served by StoredNews.
func (s *Service) Headlines(ctx context.Context, alpha2code string) ([]model.NewsResult, error) {
	key := "news_" + alpha2code
	items, err := cache.Lookup(ctx, s.cache, s.logger, "news", key, s.cacheTTL,
		func(ctx context.Context) *[]provider.NewsItemDTO {
			fetched := s.news.TopHeadlines(ctx, alpha2code)
			if len(fetched) == 0 {
				return nil
			}
			return &fetched
		})
	if err != nil || items == nil {
		return nil, err
	}

	results := make([]model.NewsResult, 0, len(*items))
	for _, item := range *items {
		results = append(results, model.NewsResult{
			Source:      item.Source,
			Author:      item.Author,
			Title:       item.Title,
			Description: item.Description,
			URL:         item.URL,
			PublishedAt: item.PublishedAt,
		})
	}
	return results, nil
}

// StoredNews returns news rows persisted by the import job, newest first.
func (s *Service) StoredNews(ctx context.Context, alpha2code string, limit, offset int) ([]model.NewsResult, error) {
	items, err := s.newsRepo.ByCountryCode(ctx, alpha2code, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get stored news: %w", err)
	}

	results := make([]model.NewsResult, 0, len(items))
	for _, item := range items {
		results = append(results, model.NewsResult{
			Source:      item.Source,
			Author:      item.Author,
			Title:       item.Title,
			Description: item.Description,
			URL:         item.URL,
			PublishedAt: item.PublishedAt,
		})
	}
	return results, nil
}

// ImportNews fetches and persists top headlines for every stored country.
// The run is single-pass and serial; a country with no headlines or a
// failed insert is logged and skipped so one failure never aborts the rest.
func (s *Service) ImportNews(ctx context.Context) error {
	codes, err := s.countryRepo.CodeIDMap(ctx)
	if err != nil {
		observability.NewsImportRunsTotal.WithLabelValues(observability.OutcomeError).Inc()
		return fmt.Errorf("failed to load country codes: %w", err)
	}
	if len(codes) == 0 {
		s.logger.Info("news import: no country codes found")
		observability.NewsImportRunsTotal.WithLabelValues(observability.OutcomeOK).Inc()
		return nil
	}
	s.logger.Info("news import started", zap.Int("countries", len(codes)))

	var imported int
	for code, countryID := range codes {
		if err := ctx.Err(); err != nil {
			observability.NewsImportRunsTotal.WithLabelValues(observability.OutcomeError).Inc()
			return err
		}

		items := s.news.TopHeadlines(ctx, code)
		if len(items) == 0 {
			s.logger.Info("no news found for country", zap.String("code", code))
			continue
		}

		rows := make([]model.News, 0, len(items))
		for _, item := range items {
			rows = append(rows, model.News{
				CountryID:   countryID,
				Source:      item.Source,
				Author:      item.Author,
				Title:       item.Title,
				Description: item.Description,
				URL:         item.URL,
				PublishedAt: item.PublishedAt,
			})
		}
		if err := s.newsRepo.BulkInsert(ctx, rows); err != nil {
			s.logger.Error("failed to save news for country",
				zap.String("code", code), zap.Error(err))
			continue
		}
		imported += len(rows)
		observability.NewsItemsImportedTotal.Add(float64(len(rows)))
		s.logger.Info("saved news for country",
			zap.String("code", code), zap.Int("count", len(rows)))
	}

	s.logger.Info("news import finished", zap.Int("items", imported))
	observability.NewsImportRunsTotal.WithLabelValues(observability.OutcomeOK).Inc()
	return nil
}
