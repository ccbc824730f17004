package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexivanou/worldinfo-api/internal/model"
	"github.com/alexivanou/worldinfo-api/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_Headlines_CachesResult(t *testing.T) {
	svc, m := newTestService()
	items := []provider.NewsItemDTO{
		{Source: "BBC", Title: "Headline", PublishedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
	}
	m.news.On("TopHeadlines", mock.Anything, "gb").Return(items).Once()

	first, err := svc.Headlines(context.Background(), "gb")
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "Headline", first[0].Title)

	second, err := svc.Headlines(context.Background(), "gb")
	require.NoError(t, err)
	require.Len(t, second, 1)
	m.news.AssertNumberOfCalls(t, "TopHeadlines", 1)
}

func TestService_Headlines_EmptyNotCached(t *testing.T) {
	svc, m := newTestService()
	m.news.On("TopHeadlines", mock.Anything, "xx").Return([]provider.NewsItemDTO{}).Twice()

	first, err := svc.Headlines(context.Background(), "xx")
	require.NoError(t, err)
	assert.Empty(t, first)

	_, err = svc.Headlines(context.Background(), "xx")
	require.NoError(t, err)
	m.news.AssertNumberOfCalls(t, "TopHeadlines", 2)
}

func TestService_StoredNews(t *testing.T) {
	svc, m := newTestService()
	m.newsRepo.On("ByCountryCode", mock.Anything, "gb", 10, 0).
		Return([]model.News{{ID: 1, CountryID: 1, Source: "BBC", Title: "Stored"}}, nil).Once()

	results, err := svc.StoredNews(context.Background(), "gb", 10, 0)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Stored", results[0].Title)
	m.news.AssertNotCalled(t, "TopHeadlines", mock.Anything, mock.Anything)
}

func TestService_ImportNews(t *testing.T) {
	headline := func(title string) []provider.NewsItemDTO {
		return []provider.NewsItemDTO{{Source: "wire", Title: title}}
	}

	t.Run("imports for every country", func(t *testing.T) {
		svc, m := newTestService()
		m.countryRepo.On("CodeIDMap", mock.Anything).
			Return(map[string]int64{"gb": 1, "fr": 2}, nil).Once()
		m.news.On("TopHeadlines", mock.Anything, "gb").Return(headline("uk news")).Once()
		m.news.On("TopHeadlines", mock.Anything, "fr").Return(headline("fr news")).Once()
		m.newsRepo.On("BulkInsert", mock.Anything, mock.Anything).Return(nil).Twice()

		err := svc.ImportNews(context.Background())

		require.NoError(t, err)
		m.newsRepo.AssertExpectations(t)
	})

	t.Run("no countries is a no-op", func(t *testing.T) {
		svc, m := newTestService()
		m.countryRepo.On("CodeIDMap", mock.Anything).
			Return(map[string]int64{}, nil).Once()

		err := svc.ImportNews(context.Background())

		require.NoError(t, err)
		m.news.AssertNotCalled(t, "TopHeadlines", mock.Anything, mock.Anything)
	})

	t.Run("empty headlines skip the country", func(t *testing.T) {
		svc, m := newTestService()
		m.countryRepo.On("CodeIDMap", mock.Anything).
			Return(map[string]int64{"gb": 1, "xx": 3}, nil).Once()
		m.news.On("TopHeadlines", mock.Anything, "gb").Return(headline("uk news")).Once()
		m.news.On("TopHeadlines", mock.Anything, "xx").Return([]provider.NewsItemDTO{}).Once()
		m.newsRepo.On("BulkInsert", mock.Anything, mock.MatchedBy(func(rows []model.News) bool {
			return len(rows) == 1 && rows[0].CountryID == 1
		})).Return(nil).Once()

		err := svc.ImportNews(context.Background())

		require.NoError(t, err)
		m.newsRepo.AssertExpectations(t)
	})

	t.Run("insert failure does not abort the run", func(t *testing.T) {
		svc, m := newTestService()
		m.countryRepo.On("CodeIDMap", mock.Anything).
			Return(map[string]int64{"gb": 1, "fr": 2, "de": 3}, nil).Once()
		m.news.On("TopHeadlines", mock.Anything, mock.Anything).Return(headline("news")).Times(3)
		m.newsRepo.On("BulkInsert", mock.Anything, mock.MatchedBy(func(rows []model.News) bool {
			return len(rows) == 1 && rows[0].CountryID == 2
		})).Return(errors.New("db down")).Once()
		m.newsRepo.On("BulkInsert", mock.Anything, mock.Anything).Return(nil).Twice()

		err := svc.ImportNews(context.Background())

		require.NoError(t, err)
		m.news.AssertNumberOfCalls(t, "TopHeadlines", 3)
	})

	t.Run("canceled context stops the run", func(t *testing.T) {
		svc, m := newTestService()
		m.countryRepo.On("CodeIDMap", mock.Anything).
			Return(map[string]int64{"gb": 1}, nil).Once()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := svc.ImportNews(ctx)

		assert.ErrorIs(t, err, context.Canceled)
		m.news.AssertNotCalled(t, "TopHeadlines", mock.Anything, mock.Anything)
	})
}
