package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	authUseCase "github.com/fintrack-app/fintrack/internal/domain/usecase/auth"
	ledgerUseCase "github.com/fintrack-app/fintrack/internal/domain/usecase/ledger"
	reportUseCase "github.com/fintrack-app/fintrack/internal/domain/usecase/report"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/handler"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/routes"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/logger"
	authmocks "github.com/fintrack-app/fintrack/mocks/port/auth"
	coremocks "github.com/fintrack-app/fintrack/mocks/port/core"
	persistencemocks "github.com/fintrack-app/fintrack/mocks/port/persistence"
)

type apiFixture struct {
	router       *gin.Engine
	users        *persistencemocks.MockUserRepository
	categories   *persistencemocks.MockCategoryRepository
	transactions *persistencemocks.MockTransactionRepository
	hasher       *authmocks.MockPasswordHasher
	tokens       *authmocks.MockTokenService
}

func newAPIFixture() *apiFixture {
	gin.SetMode(gin.TestMode)

	users := new(persistencemocks.MockUserRepository)
	categories := new(persistencemocks.MockCategoryRepository)
	transactions := new(persistencemocks.MockTransactionRepository)
	hasher := new(authmocks.MockPasswordHasher)
	tokens := new(authmocks.MockTokenService)

	timeProvider := new(coremocks.MockTimeProvider)
	timeProvider.On("Now").Return(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)).Maybe()

	uow := new(persistencemocks.MockUnitOfWork)
	uow.On("Begin", mock.Anything).Return(context.Background(), nil).Maybe()
	uow.On("Commit", mock.Anything).Return(nil).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	uow.On("CategoryRepository", mock.Anything).Return(categories).Maybe()
	uow.On("TransactionRepository", mock.Anything).Return(transactions).Maybe()

	noopLogger := logger.NewNoopLogger()
	authService := authUseCase.NewService(users, hasher, tokens, timeProvider, noopLogger)
	ledgerService := ledgerUseCase.NewService(uow, categories, transactions, timeProvider, noopLogger, 0)
	reportService := reportUseCase.NewService(categories, transactions, noopLogger)

	router := gin.New()
	routes.SetupRoutes(
		router,
		tokens,
		noopLogger,
		handler.NewAuthHandler(authService, noopLogger),
		handler.NewCategoryHandler(ledgerService, noopLogger),
		handler.NewTransactionHandler(ledgerService, noopLogger),
		handler.NewDashboardHandler(reportService, noopLogger),
	)

	return &apiFixture{
		router:       router,
		users:        users,
		categories:   categories,
		transactions: transactions,
		hasher:       hasher,
		tokens:       tokens,
	}
}

// authorize makes the token service accept "test-token" for the given user
func (f *apiFixture) authorize(userID uint64) {
	f.tokens.On("Validate", "test-token").Return(userID, nil)
}

func (f *apiFixture) do(method, path, body string, authorized bool) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	if authorized {
		request.Header.Set("Authorization", "Bearer test-token")
	}
	f.router.ServeHTTP(recorder, request)
	return recorder
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("should register and return 201 with the new account", func(t *testing.T) {
		f := newAPIFixture()
		f.users.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, errs.ErrUserNotFound)
		f.users.On("GetByUsername", mock.Anything, "alice").Return(nil, errs.ErrUserNotFound)
		f.hasher.On("Hash", "secret123").Return("$hashed$", nil)
		f.users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 1
		}).Return(nil)

		recorder := f.do(http.MethodPost, "/auth/register",
			`{"username": "alice", "email": "alice@example.com", "password": "secret123"}`, false)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(),
			`"user":{"id":1,"username":"alice","email":"alice@example.com"}`)
	})

	t.Run("should return 400 for a short password", func(t *testing.T) {
		f := newAPIFixture()

		recorder := f.do(http.MethodPost, "/auth/register",
			`{"username": "alice", "email": "alice@example.com", "password": "123"}`, false)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("should return 400 for a duplicate email", func(t *testing.T) {
		f := newAPIFixture()
		f.users.On("GetByEmail", mock.Anything, "alice@example.com").
			Return(&entity.User{ID: 1, Email: "alice@example.com"}, nil)

		recorder := f.do(http.MethodPost, "/auth/register",
			`{"username": "alice", "email": "alice@example.com", "password": "secret123"}`, false)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "email already exists")
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("should return a token for valid credentials", func(t *testing.T) {
		f := newAPIFixture()
		user := &entity.User{ID: 42, Username: "alice", Email: "alice@example.com", PasswordHash: "$hashed$"}
		f.users.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)
		f.hasher.On("Compare", "$hashed$", "secret123").Return(true)
		f.tokens.On("Generate", uint64(42)).Return("signed-token", nil)

		recorder := f.do(http.MethodPost, "/auth/login",
			`{"email": "alice@example.com", "password": "secret123"}`, false)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "signed-token")
		assert.Contains(t, recorder.Body.String(),
			`"user":{"id":42,"username":"alice","email":"alice@example.com"}`)
	})

	t.Run("should return 401 with a uniform message for bad credentials", func(t *testing.T) {
		f := newAPIFixture()
		f.users.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, errs.ErrUserNotFound)

		recorder := f.do(http.MethodPost, "/auth/login",
			`{"email": "alice@example.com", "password": "wrong"}`, false)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.JSONEq(t, `{"error": "Invalid credentials"}`, recorder.Body.String())
	})
}

func TestCategoryEndpoints(t *testing.T) {
	t.Run("should require authentication", func(t *testing.T) {
		f := newAPIFixture()

		recorder := f.do(http.MethodPost, "/api/categories", `{"name": "Food"}`, false)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("should create a category and return 200", func(t *testing.T) {
		f := newAPIFixture()
		f.authorize(1)
		f.categories.On("GetOwnedByName", mock.Anything, uint64(1), "Food").Return(nil, errs.ErrCategoryNotFound)
		f.categories.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Category).ID = 3
		}).Return(nil)

		recorder := f.do(http.MethodPost, "/api/categories", `{"name": "Food"}`, true)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"id":3`)
	})

	t.Run("should return 400 when deleting a referenced category", func(t *testing.T) {
		f := newAPIFixture()
		f.authorize(1)
		f.categories.On("GetOwned", mock.Anything, uint64(1), uint64(3)).
			Return(&entity.Category{ID: 3, UserID: 1, Name: "Food"}, nil)
		f.transactions.On("CountByCategory", mock.Anything, uint64(3)).Return(int64(2), nil)

		recorder := f.do(http.MethodDelete, "/api/categories/3", "", true)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "associated transactions")
	})

	t.Run("should return 404 for another user's category", func(t *testing.T) {
		f := newAPIFixture()
		f.authorize(2)
		f.categories.On("GetOwned", mock.Anything, uint64(2), uint64(3)).
			Return(nil, errs.ErrCategoryNotFound)

		recorder := f.do(http.MethodDelete, "/api/categories/3", "", true)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestTransactionEndpoints(t *testing.T) {
	t.Run("should create a transaction and return 200", func(t *testing.T) {
		f := newAPIFixture()
		f.authorize(1)
		f.transactions.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Transaction).ID = 9
		}).Return(nil)

		recorder := f.do(http.MethodPost, "/api/transactions",
			`{"amount": 99.99, "type": "expense", "description": "groceries"}`, true)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"amount":99.99`)
	})

	t.Run("should return 400 for an invalid amount", func(t *testing.T) {
		f := newAPIFixture()
		f.authorize(1)

		recorder := f.do(http.MethodPost, "/api/transactions",
			`{"amount": -5, "type": "expense"}`, true)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid amount")
	})

	t.Run("should return 404 when updating another user's transaction", func(t *testing.T) {
		f := newAPIFixture()
		f.authorize(2)
		f.transactions.On("GetOwned", mock.Anything, uint64(2), uint64(9)).
			Return(nil, errs.ErrTransactionNotFound)

		recorder := f.do(http.MethodPut, "/api/transactions/9", `{"description": "updated"}`, true)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("should update the provided fields", func(t *testing.T) {
		f := newAPIFixture()
		f.authorize(1)
		f.transactions.On("GetOwned", mock.Anything, uint64(1), uint64(9)).Return(&entity.Transaction{
			ID: 9, UserID: 1, AmountCents: 5000, Type: entity.TypeExpense,
			Date: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		}, nil)
		f.transactions.On("Update", mock.Anything, mock.MatchedBy(func(tr *entity.Transaction) bool {
			return tr.AmountCents == 7525
		})).Return(nil)

		recorder := f.do(http.MethodPut, "/api/transactions/9", `{"amount": 75.25}`, true)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"amount":75.25`)
	})

	t.Run("should delete an owned transaction", func(t *testing.T) {
		f := newAPIFixture()
		f.authorize(1)
		f.transactions.On("DeleteOwned", mock.Anything, uint64(1), uint64(9)).Return(nil)

		recorder := f.do(http.MethodDelete, "/api/transactions/9", "", true)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestDashboardEndpoints(t *testing.T) {
	t.Run("should return the overview", func(t *testing.T) {
		f := newAPIFixture()
		f.authorize(1)
		f.transactions.On("SumByType", mock.Anything, uint64(1), entity.TypeIncome).Return(int64(10000), nil)
		f.transactions.On("SumByType", mock.Anything, uint64(1), entity.TypeExpense).Return(int64(2500), nil)
		f.transactions.On("ListByUser", mock.Anything, uint64(1)).Return([]*entity.Transaction{}, nil)
		f.categories.On("ListByUser", mock.Anything, uint64(1)).Return([]*entity.Category{}, nil)

		recorder := f.do(http.MethodGet, "/api/dashboard", "", true)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"balance":75`)
	})

	t.Run("should return per-category stats", func(t *testing.T) {
		f := newAPIFixture()
		f.authorize(1)
		f.categories.On("ListByUser", mock.Anything, uint64(1)).Return([]*entity.Category{
			{ID: 3, UserID: 1, Name: "Food"},
		}, nil)
		f.transactions.On("SumByCategoryAndType", mock.Anything, uint64(1), uint64(3), entity.TypeIncome).Return(int64(0), nil)
		f.transactions.On("SumByCategoryAndType", mock.Anything, uint64(1), uint64(3), entity.TypeExpense).Return(int64(7550), nil)

		recorder := f.do(http.MethodGet, "/api/dashboard/stats", "", true)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"labels": ["Food"], "income": [0], "expense": [75.5]}`, recorder.Body.String())
	})
}

func TestProfileEndpoint(t *testing.T) {
	t.Run("should return the authenticated account", func(t *testing.T) {
		f := newAPIFixture()
		f.authorize(42)
		f.users.On("GetByID", mock.Anything, uint64(42)).Return(&entity.User{
			ID: 42, Username: "alice", Email: "alice@example.com", Role: entity.RoleUser,
			CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		}, nil)

		recorder := f.do(http.MethodGet, "/api/profile", "", true)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"username":"alice"`)
		assert.Contains(t, recorder.Body.String(), "2024-01-01 12:00")
	})
}
