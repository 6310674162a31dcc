package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"simcompare/internal/db/models/postgres/public/model"
	"simcompare/internal/domain"
	mock_repository "simcompare/internal/repository/mocks"
	"simcompare/internal/service"
	"simcompare/pkg/simbackend"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testJwtSecret = "test-secret"

func newTestToken(t *testing.T, subject string, secret string, expiresAt time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, userClaims{
		Email: subject + "@example.com",
		StandardClaims: jwt.StandardClaims{
			Subject:   subject,
			ExpiresAt: expiresAt.Unix(),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

type testApi struct {
	router                    *gin.Engine
	simulationRepository      *mock_repository.MockSimulationRepository
	savedComparisonRepository *mock_repository.MockSavedComparisonRepository
	token                     string
}

func newTestApi(t *testing.T) testApi {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	simulationRepository := mock_repository.NewMockSimulationRepository(ctrl)
	savedComparisonRepository := mock_repository.NewMockSavedComparisonRepository(ctrl)

	handler := ApiHandler{
		JwtDecodeToken:            testJwtSecret,
		ComparisonService:         service.NewComparisonService(simulationRepository),
		SimulationRepository:      simulationRepository,
		SavedComparisonRepository: savedComparisonRepository,
	}

	return testApi{
		router:                    handler.InitializeRouterEngine(),
		simulationRepository:      simulationRepository,
		savedComparisonRepository: savedComparisonRepository,
		token:                     newTestToken(t, "user-1", testJwtSecret, time.Now().Add(time.Hour)),
	}
}

func (a testApi) do(method, path, body string) *httptest.ResponseRecorder {
	return a.doWithToken(method, path, body, a.token)
}

func (a testApi) doWithToken(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func testSimulation(id string, finalValue float64) *domain.SimulationResult {
	return &domain.SimulationResult{
		ID:           id,
		CurrencyType: "USD",
		StockSimulationRequest: domain.StockSimulationRequest{
			Broker:          "Interactive Brokers",
			Stocks:          []string{"SPY"},
			StartDate:       "2024-01-01",
			EndDate:         "2024-01-11",
			StartCapital:    1000,
			SimulationType:  domain.SimulationType_Static,
			RiskTolerance:   20,
			TradingWeekdays: []domain.Weekday{domain.Weekday_Monday},
		},
		UserPortfolios: []domain.UserPortfolio{
			{Date: "2024-01-01", TotalPortfolioValue: 1000},
			{Date: "2024-01-11", TotalPortfolioValue: finalValue},
		},
	}
}

func TestAuth(t *testing.T) {
	t.Run("welcome needs no token", func(t *testing.T) {
		a := newTestApi(t)
		w := a.doWithToken(http.MethodGet, "/", "", "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		a := newTestApi(t)
		w := a.doWithToken(http.MethodGet, "/simulations", "", "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		a := newTestApi(t)
		token := newTestToken(t, "user-1", testJwtSecret, time.Now().Add(-time.Hour))
		w := a.doWithToken(http.MethodGet, "/simulations", "", token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		a := newTestApi(t)
		token := newTestToken(t, "user-1", "another-secret", time.Now().Add(time.Hour))
		w := a.doWithToken(http.MethodGet, "/simulations", "", token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token is forwarded to the backend", func(t *testing.T) {
		a := newTestApi(t)
		a.simulationRepository.EXPECT().
			List(gomock.Any()).
			DoAndReturn(func(ctx context.Context) ([]domain.SimulationHistoryEntry, error) {
				token, ok := simbackend.AccessTokenFromContext(ctx)
				require.True(t, ok)
				require.Equal(t, a.token, token)
				return []domain.SimulationHistoryEntry{{ID: "1"}}, nil
			})

		w := a.do(http.MethodGet, "/simulations", "")
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCompare(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		a := newTestApi(t)
		a.simulationRepository.EXPECT().Get(gomock.Any(), "1").Return(testSimulation("1", 1100), nil)
		a.simulationRepository.EXPECT().Get(gomock.Any(), "2").Return(testSimulation("2", 900), nil)

		w := a.do(http.MethodPost, "/compare", `{"simulationIds": ["1", "2"]}`)
		require.Equal(t, http.StatusOK, w.Code)

		out := service.Comparison{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Equal(t, []string{"1", "2"}, out.SimulationIDs)
		require.Len(t, out.NormalizedSeries, 2)
		finalValue, ok := out.Summaries[0].Results.Get("Final Value")
		require.True(t, ok)
		require.Equal(t, "$1,100.00", finalValue)
	})

	t.Run("unknown simulation is a 404", func(t *testing.T) {
		a := newTestApi(t)
		a.simulationRepository.EXPECT().Get(gomock.Any(), "1").Return(nil, domain.ErrSimulationNotFound)

		w := a.do(http.MethodPost, "/compare", `{"simulationIds": ["1"]}`)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("degenerate simulation is a 422", func(t *testing.T) {
		a := newTestApi(t)
		degenerate := testSimulation("1", 1100)
		degenerate.UserPortfolios = degenerate.UserPortfolios[:1]
		a.simulationRepository.EXPECT().Get(gomock.Any(), "1").Return(degenerate, nil)

		w := a.do(http.MethodPost, "/compare", `{"simulationIds": ["1"]}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Contains(t, w.Body.String(), "at least two snapshots")
	})

	t.Run("duplicate ids are a 400", func(t *testing.T) {
		a := newTestApi(t)
		w := a.do(http.MethodPost, "/compare", `{"simulationIds": ["1", "1"]}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("csv", func(t *testing.T) {
		a := newTestApi(t)
		a.simulationRepository.EXPECT().Get(gomock.Any(), "1").Return(testSimulation("1", 1100), nil)

		w := a.do(http.MethodPost, "/compare/csv", `{"simulationIds": ["1"]}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		require.True(t, strings.HasPrefix(w.Body.String(), "simulation_id,metric,value\n1,Simulated Days,10\n"))
	})
}

func TestSimulationSummary(t *testing.T) {
	a := newTestApi(t)
	a.simulationRepository.EXPECT().Get(gomock.Any(), "1").Return(testSimulation("1", 1100), nil)

	w := a.do(http.MethodGet, "/simulations/1/summary", "")
	require.Equal(t, http.StatusOK, w.Code)

	out := service.SimulationSummary{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	strategy, ok := out.Configuration.Get("Strategy")
	require.True(t, ok)
	require.Equal(t, "Static Allocation (risk tolerance 20%)", strategy)
}

func TestValidateSimulation(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		a := newTestApi(t)
		body := `{
			"broker": "Trade Republic",
			"stocks": ["AAPL"],
			"startDate": "2023-01-01",
			"endDate": "2023-12-31",
			"startCapital": 10000,
			"simulationType": "BUY_AND_HOLD",
			"indicators": [{"type": "BREAKOUT", "period": 20}],
			"tradingWeekdays": ["MONDAY"]
		}`
		w := a.do(http.MethodPost, "/simulations/validate", body)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"valid": true, "errors": []}`, w.Body.String())
	})

	t.Run("invalid request", func(t *testing.T) {
		a := newTestApi(t)
		body := `{
			"broker": "Trade Republic",
			"stocks": ["AAPL"],
			"startDate": "2023-01-01",
			"endDate": "2023-12-31",
			"startCapital": 0,
			"simulationType": "BUY_AND_HOLD",
			"tradingWeekdays": ["MONDAY"]
		}`
		w := a.do(http.MethodPost, "/simulations/validate", body)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"valid": false, "errors": [{"field": "startCapital", "message": "start capital must be greater than 0"}]}`, w.Body.String())
	})

	t.Run("unknown indicator", func(t *testing.T) {
		a := newTestApi(t)
		w := a.do(http.MethodPost, "/simulations/validate", `{"indicators": [{"type": "RSI"}]}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		a := newTestApi(t)
		w := a.do(http.MethodPost, "/simulations/validate", `{"stocks": `)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestComparisons(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		a := newTestApi(t)
		id := uuid.New()
		a.savedComparisonRepository.EXPECT().
			Add(domain.SavedComparison{
				UserID:        "user-1",
				Name:          "index vs tech",
				SimulationIDs: []string{"1", "2"},
			}).
			Return(&domain.SavedComparison{SavedComparisonID: id, UserID: "user-1"}, nil)

		w := a.do(http.MethodPost, "/comparisons", `{"name": " index vs tech ", "simulationIds": ["1", "2"]}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), id.String())
	})

	t.Run("add without name", func(t *testing.T) {
		a := newTestApi(t)
		w := a.do(http.MethodPost, "/comparisons", `{"simulationIds": ["1"]}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("add rejects ids compare would reject", func(t *testing.T) {
		for _, body := range []string{
			`{"name": "dupes", "simulationIds": ["1", "1"]}`,
			`{"name": "blank", "simulationIds": ["1", ""]}`,
			`{"name": "empty", "simulationIds": []}`,
			`{"name": "too many", "simulationIds": ["1","2","3","4","5","6","7","8","9","10","11"]}`,
		} {
			// no Add expectation: the mock fails the test if it is called
			a := newTestApi(t)
			w := a.do(http.MethodPost, "/comparisons", body)
			require.Equal(t, http.StatusBadRequest, w.Code, body)
		}
	})

	t.Run("get runs the comparison", func(t *testing.T) {
		a := newTestApi(t)
		id := uuid.New()
		a.savedComparisonRepository.EXPECT().
			Get(id, "user-1").
			Return(&domain.SavedComparison{SavedComparisonID: id, UserID: "user-1", SimulationIDs: []string{"1"}}, nil)
		a.simulationRepository.EXPECT().Get(gomock.Any(), "1").Return(testSimulation("1", 1100), nil)

		w := a.do(http.MethodGet, "/comparisons/"+id.String(), "")
		require.Equal(t, http.StatusOK, w.Code)

		out := getComparisonResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Equal(t, id, out.SavedComparison.SavedComparisonID)
		require.Equal(t, []string{"1"}, out.Comparison.SimulationIDs)
	})

	t.Run("get with bad id", func(t *testing.T) {
		a := newTestApi(t)
		w := a.do(http.MethodGet, "/comparisons/not-a-uuid", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		a := newTestApi(t)
		a.savedComparisonRepository.EXPECT().ListByUser("user-1").Return([]domain.SavedComparison{}, nil)

		w := a.do(http.MethodGet, "/comparisons", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("delete someone else's comparison", func(t *testing.T) {
		a := newTestApi(t)
		id := uuid.New()
		a.savedComparisonRepository.EXPECT().Delete(id, "user-1").Return(domain.ErrComparisonNotFound)

		w := a.do(http.MethodDelete, "/comparisons/"+id.String(), "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		a := newTestApi(t)
		id := uuid.New()
		a.savedComparisonRepository.EXPECT().Delete(id, "user-1").Return(nil)

		w := a.do(http.MethodDelete, "/comparisons/"+id.String(), "")
		require.Equal(t, http.StatusNoContent, w.Code)
	})
}

func Test_errorStatusCode(t *testing.T) {
	require.Equal(t, http.StatusUnprocessableEntity, errorStatusCode(domain.UnrecognizedIndicatorError{Type: "RSI"}))
	require.Equal(t, http.StatusUnprocessableEntity, errorStatusCode(domain.ErrDivisionByZero))
	require.Equal(t, http.StatusNotFound, errorStatusCode(domain.ErrComparisonNotFound))
	require.Equal(t, http.StatusInternalServerError, errorStatusCode(context.DeadlineExceeded))
}

func TestLogRequestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	simulationRepository := mock_repository.NewMockSimulationRepository(ctrl)
	requestLogRepository := mock_repository.NewMockRequestLogRepository(ctrl)

	handler := ApiHandler{
		JwtDecodeToken:       testJwtSecret,
		ComparisonService:    service.NewComparisonService(simulationRepository),
		SimulationRepository: simulationRepository,
		RequestLogRepository: requestLogRepository,
	}
	router := handler.InitializeRouterEngine()
	requestLogID := uuid.New()

	requestLogRepository.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ qrm.Queryable, rl model.RequestLog) (*model.RequestLog, error) {
			require.Equal(t, http.MethodPost, rl.Method)
			require.Equal(t, "/compare", rl.Route)
			require.Equal(t, `{"simulationIds": ["1"]}`, *rl.RequestBody)
			rl.RequestLogID = requestLogID
			return &rl, nil
		})
	requestLogRepository.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ qrm.Executable, rl model.RequestLog) error {
			require.Equal(t, requestLogID, rl.RequestLogID)
			require.Equal(t, int32(http.StatusOK), *rl.StatusCode)
			require.Equal(t, "user-1", *rl.UserID)
			require.NotNil(t, rl.DurationMs)
			require.Contains(t, *rl.ProcessingTimes, "fetched simulations")
			return nil
		})
	simulationRepository.EXPECT().Get(gomock.Any(), "1").Return(testSimulation("1", 1100), nil)

	req := httptest.NewRequest(http.MethodPost, "/compare", strings.NewReader(`{"simulationIds": ["1"]}`))
	req.Header.Set("Authorization", "Bearer "+newTestToken(t, "user-1", testJwtSecret, time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}
