package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/framlopez/uala-transactions-api/internal/upstream"
	"github.com/framlopez/uala-transactions-api/internal/upstream/upstream_mocks"
)

// DashboardServiceSuite defines the test suite for DashboardServiceInterface
type DashboardServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	source  *upstream_mocks.MockSourceInterface
	metrics *fakeMetrics
	service DashboardServiceInterface
}

// SetupTest runs before each test in the suite
func (s *DashboardServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.source = upstream_mocks.NewMockSourceInterface(s.ctrl)
	s.metrics = newFakeMetrics()
	s.service = NewDashboardService(s.source, s.metrics)
}

// TearDownTest runs after each test in the suite
func (s *DashboardServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestDashboardServiceSuite runs the test suite
func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) TestGetProfile_Success() {
	dashboard := dashboardFixture()
	s.source.EXPECT().FetchDashboard(gomock.Any()).Return(dashboard, nil)

	user, err := s.service.GetProfile(context.Background())

	s.NoError(err)
	s.Require().NotNil(user)
	s.Equal(dashboard.User.ID, user.ID)
	s.Equal(dashboard.User.Email, user.Email)
	s.Equal(1, s.metrics.counterValue("upstream.fetch:success"))
}

func (s *DashboardServiceSuite) TestGetProfile_UpstreamFailure() {
	s.source.EXPECT().FetchDashboard(gomock.Any()).Return(nil, upstream.ErrFetchFailed)

	user, err := s.service.GetProfile(context.Background())

	s.Nil(user)
	s.ErrorIs(err, upstream.ErrFetchFailed)
	s.Equal(1, s.metrics.counterValue("upstream.fetch:error"))
}

// GetSummary returns the upstream totals untouched; nothing is recomputed
// from the transaction list.
func (s *DashboardServiceSuite) TestGetSummary_PassesThroughUpstreamTotals() {
	dashboard := dashboardFixture(
		transactionFixture("tx-1", "2024-06-14T13:30:00Z"),
	)
	s.source.EXPECT().FetchDashboard(gomock.Any()).Return(dashboard, nil)

	summary, err := s.service.GetSummary(context.Background())

	s.NoError(err)
	s.Require().NotNil(summary)
	s.Equal("150.5", summary.Daily.TotalAmount.String())
	s.Equal("900", summary.Weekly.TotalAmount.String())
	s.Equal("4200.25", summary.Monthly.TotalAmount.String())
}

func (s *DashboardServiceSuite) TestGetSummary_UpstreamFailure() {
	s.source.EXPECT().FetchDashboard(gomock.Any()).Return(nil, errors.New("decode failed"))

	summary, err := s.service.GetSummary(context.Background())

	s.Nil(summary)
	s.Error(err)
}
