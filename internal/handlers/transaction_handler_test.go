// internal/handlers/transaction_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/packtrack/packtrack-be/internal/core/domain"
	"github.com/packtrack/packtrack-be/internal/core/ports"
	"github.com/packtrack/packtrack-be/internal/handlers"
	"github.com/packtrack/packtrack-be/test/helpers"
	"github.com/packtrack/packtrack-be/test/mocks"
)

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	validBody := map[string]interface{}{
		"kind":           "order",
		"source_kind":    "production_house",
		"source_id":      uuid.New().String(),
		"party_id":       uuid.New().String(),
		"factory_id":     uuid.New().String(),
		"date":           "2026-08-01",
		"vehicle":        "Tata 407",
		"vehicle_number": "MH12AB1234",
		"quantities":     map[string]int{"film_white": 10},
	}

	tests := []struct {
		name           string
		body           interface{}
		rawBody        string
		setupMocks     func(*mocks.MockTransactionService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "successfully_creates_order",
			body: validBody,
			setupMocks: func(m *mocks.MockTransactionService) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx interface{}, tx *domain.Transaction) (*domain.Transaction, error) {
						created := *tx
						created.ID = uuid.New()
						created.CustomID = "ORD-0001"
						created.Status = domain.StatusActive
						return &created, nil
					})
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body []byte) {
				var response domain.Transaction
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "ORD-0001", response.CustomID)
				assert.Equal(t, domain.KindOrder, response.Kind)
			},
		},
		{
			name:           "malformed_json_rejected",
			rawBody:        "{not json",
			setupMocks:     func(m *mocks.MockTransactionService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "Invalid request body", response["error"])
			},
		},
		{
			name: "invalid_source_id_rejected",
			body: func() map[string]interface{} {
				b := copyBody(validBody)
				b["source_id"] = "not-a-uuid"
				return b
			}(),
			setupMocks:     func(m *mocks.MockTransactionService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown_material_kind_rejected",
			body: func() map[string]interface{} {
				b := copyBody(validBody)
				b["quantities"] = map[string]int{"unobtainium": 10}
				return b
			}(),
			setupMocks:     func(m *mocks.MockTransactionService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "insufficient_stock_returns_shortfall_details",
			body: validBody,
			setupMocks: func(m *mocks.MockTransactionService) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewInsufficientStockError([]domain.Shortfall{
						{Kind: domain.MaterialFilmWhite, Requested: 10, Available: 4},
					}))
			},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response struct {
					Error   string             `json:"error"`
					Details []domain.Shortfall `json:"details"`
				}
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "insufficient stock", response.Error)
				require.Len(t, response.Details, 1)
				assert.Equal(t, domain.MaterialFilmWhite, response.Details[0].Kind)
				assert.Equal(t, 4, response.Details[0].Available)
			},
		},
		{
			name: "unknown_reference_returns_not_found",
			body: validBody,
			setupMocks: func(m *mocks.MockTransactionService) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewNotFoundError("party", uuid.New().String()))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "service_error_returns_internal",
			body: validBody,
			setupMocks: func(m *mocks.MockTransactionService) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "internal server error", response["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockTransactionService(ctrl)
			handler := handlers.NewTransactionHandler(mockService, helpers.TestLogger())

			tt.setupMocks(mockService)

			var reqBody []byte
			if tt.rawBody != "" {
				reqBody = []byte(tt.rawBody)
			} else {
				reqBody, _ = json.Marshal(tt.body)
			}

			req := httptest.NewRequest("POST", "/api/v1/transactions", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.CreateTransaction(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestTransactionHandler_GetTransaction(t *testing.T) {
	testTx := helpers.CreateTestTransaction()

	tests := []struct {
		name           string
		id             string
		setupMocks     func(*mocks.MockTransactionService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "successfully_retrieves_transaction",
			id:   testTx.ID.String(),
			setupMocks: func(m *mocks.MockTransactionService) {
				m.EXPECT().
					GetByID(gomock.Any(), testTx.ID).
					Return(testTx, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response domain.Transaction
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, testTx.ID, response.ID)
				assert.Equal(t, testTx.Vehicle, response.Vehicle)
			},
		},
		{
			name:           "invalid_uuid_format",
			id:             "not-a-uuid",
			setupMocks:     func(m *mocks.MockTransactionService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "Invalid transaction ID format", response["error"])
			},
		},
		{
			name: "transaction_not_found",
			id:   uuid.New().String(),
			setupMocks: func(m *mocks.MockTransactionService) {
				m.EXPECT().
					GetByID(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewNotFoundError("transaction", uuid.New().String()))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockTransactionService(ctrl)
			handler := handlers.NewTransactionHandler(mockService, helpers.TestLogger())

			tt.setupMocks(mockService)

			req := httptest.NewRequest("GET", "/api/v1/transactions/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.GetTransaction(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestTransactionHandler_ListTransactions(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMocks     func(*mocks.MockTransactionService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:  "lists_with_default_pagination",
			query: "",
			setupMocks: func(m *mocks.MockTransactionService) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx interface{}, params ports.TransactionListParams) (*ports.TransactionListResult, error) {
						assert.Equal(t, 1, params.Page)
						assert.Equal(t, 20, params.PageSize)
						assert.False(t, params.IncludeDisabled)
						return &ports.TransactionListResult{
							Transactions: helpers.CreateTestTransactions(3),
							Page:         1,
							PageSize:     20,
							TotalCount:   3,
							TotalPages:   1,
						}, nil
					})
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response ports.TransactionListResult
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Len(t, response.Transactions, 3)
				assert.Equal(t, int64(3), response.TotalCount)
			},
		},
		{
			name:  "passes_filters_through",
			query: "?kind=order&source_kind=production_house&from=2026-01-01&to=2026-06-30&include_disabled=true&page=2&page_size=10",
			setupMocks: func(m *mocks.MockTransactionService) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx interface{}, params ports.TransactionListParams) (*ports.TransactionListResult, error) {
						assert.Equal(t, "order", params.Kind)
						assert.Equal(t, "production_house", params.SourceKind)
						assert.True(t, params.IncludeDisabled)
						assert.Equal(t, 2, params.Page)
						assert.Equal(t, 10, params.PageSize)
						require.NotNil(t, params.DateFrom)
						require.NotNil(t, params.DateTo)
						assert.True(t, params.DateTo.After(*params.DateFrom))
						return &ports.TransactionListResult{Page: 2, PageSize: 10}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "caps_page_size",
			query: "?page_size=5000",
			setupMocks: func(m *mocks.MockTransactionService) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx interface{}, params ports.TransactionListParams) (*ports.TransactionListResult, error) {
						assert.Equal(t, 100, params.PageSize)
						return &ports.TransactionListResult{}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockTransactionService(ctrl)
			handler := handlers.NewTransactionHandler(mockService, helpers.TestLogger())

			tt.setupMocks(mockService)

			req := httptest.NewRequest("GET", "/api/v1/transactions"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.ListTransactions(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	testTx := helpers.CreateTestTransaction()

	tests := []struct {
		name           string
		id             string
		body           string
		setupMocks     func(*mocks.MockTransactionService)
		expectedStatus int
	}{
		{
			name: "updates_vehicle",
			id:   testTx.ID.String(),
			body: `{"vehicle":"Eicher Pro"}`,
			setupMocks: func(m *mocks.MockTransactionService) {
				m.EXPECT().
					Update(gomock.Any(), testTx.ID, gomock.Any()).
					DoAndReturn(func(ctx interface{}, id uuid.UUID, update domain.TransactionUpdate) (*domain.Transaction, error) {
						require.NotNil(t, update.Vehicle)
						assert.Equal(t, "Eicher Pro", *update.Vehicle)
						assert.Nil(t, update.Date)
						updated := *testTx
						updated.Vehicle = *update.Vehicle
						return &updated, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid_uuid_format",
			id:             "not-a-uuid",
			body:           `{"vehicle":"Eicher Pro"}`,
			setupMocks:     func(m *mocks.MockTransactionService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "update_on_deleted_record_rejected",
			id:   testTx.ID.String(),
			body: `{"vehicle":"Eicher Pro"}`,
			setupMocks: func(m *mocks.MockTransactionService) {
				m.EXPECT().
					Update(gomock.Any(), testTx.ID, gomock.Any()).
					Return(nil, domain.NewAlreadyDeletedError("transaction", testTx.ID.String()))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockTransactionService(ctrl)
			handler := handlers.NewTransactionHandler(mockService, helpers.TestLogger())

			tt.setupMocks(mockService)

			req := httptest.NewRequest("PATCH", "/api/v1/transactions/"+tt.id, bytes.NewReader([]byte(tt.body)))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.UpdateTransaction(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	txID := uuid.New()

	tests := []struct {
		name           string
		id             string
		setupMocks     func(*mocks.MockTransactionService)
		expectedStatus int
	}{
		{
			name: "successfully_deletes_transaction",
			id:   txID.String(),
			setupMocks: func(m *mocks.MockTransactionService) {
				m.EXPECT().
					Delete(gomock.Any(), txID).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "second_delete_rejected",
			id:   txID.String(),
			setupMocks: func(m *mocks.MockTransactionService) {
				m.EXPECT().
					Delete(gomock.Any(), txID).
					Return(domain.NewAlreadyDeletedError("transaction", txID.String()))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "delete_unknown_transaction",
			id:   txID.String(),
			setupMocks: func(m *mocks.MockTransactionService) {
				m.EXPECT().
					Delete(gomock.Any(), txID).
					Return(domain.NewNotFoundError("transaction", txID.String()))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockTransactionService(ctrl)
			handler := handlers.NewTransactionHandler(mockService, helpers.TestLogger())

			tt.setupMocks(mockService)

			req := httptest.NewRequest("DELETE", "/api/v1/transactions/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.DeleteTransaction(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func copyBody(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
