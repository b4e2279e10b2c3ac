package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shop-orders/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validCart = `{
	"customer_name": "A",
	"customer_phone": "555",
	"items": [{"product_name": "Widget", "product_vin": "V1", "product_model": "M1", "price": 10, "quantity": 2}],
	"total_amount": 20
}`

func TestOrderHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		body           string
		mockReturn     *model.OrderResponse
		mockError      error
		expectedStatus int
		expectedError  string
		expectService  bool
	}{
		{
			name:           "Success",
			body:           validCart,
			mockReturn:     &model.OrderResponse{Success: true, OrderNumber: "ORD-20240315103000", OrderID: 42},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Missing fields",
			body:           `{"customer_name": "A"}`,
			mockError:      model.NewValidationError("customer_phone", model.MsgMissingFields),
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.MsgMissingFields,
			expectService:  true,
		},
		{
			name:           "Storage failure",
			body:           validCart,
			mockError:      model.NewStorageError("failed to create order", errors.New("connection refused")),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to create order: connection refused",
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			body:           "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.MsgInvalidJSON,
		},
		{
			name:           "Wrong field type",
			body:           `{"customer_name": "A", "customer_phone": "555", "items": [{"quantity": "two"}]}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.MsgInvalidJSON,
		},
		{
			name:           "Body too large",
			body:           `{"customer_name": "` + strings.Repeat("a", maxBodyBytes) + `"}`,
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedError:  "Request body too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, logger)

			if tt.expectService {
				if tt.mockError != nil {
					mockService.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.OrderRequest")).Return(nil, tt.mockError)
				} else {
					mockService.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.OrderRequest")).Return(tt.mockReturn, nil)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			if tt.expectedError != "" {
				var errResp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
				assert.Equal(t, tt.expectedError, errResp.Error)
			} else {
				assert.JSONEq(t, `{"success":true,"order_number":"ORD-20240315103000","order_id":42}`, w.Body.String())
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			} else {
				mockService.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestOrderHandler_Create_DecodesCart(t *testing.T) {
	mockService := new(MockOrderService)
	handler := NewOrderHandler(mockService, zerolog.Nop())

	var got *model.OrderRequest
	mockService.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.OrderRequest")).
		Run(func(args mock.Arguments) {
			got = args.Get(1).(*model.OrderRequest)
		}).
		Return(&model.OrderResponse{Success: true, OrderNumber: "ORD-20240315103000", OrderID: 1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(validCart))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, "A", got.CustomerName)
	assert.Equal(t, "", got.CustomerEmail)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "V1", *got.Items[0].ProductVIN)
	assert.Equal(t, 2, *got.Items[0].Quantity)
	assert.Equal(t, "10", got.Items[0].Price.String())
	assert.Equal(t, "20", got.TotalAmount.String())
}

func TestOrderHandler_Create_EmptyBody(t *testing.T) {
	mockService := new(MockOrderService)
	handler := NewOrderHandler(mockService, zerolog.Nop())

	mockService.On("CreateOrder", mock.Anything, &model.OrderRequest{}).
		Return(nil, model.NewValidationError("customer_name", model.MsgMissingFields))

	req := httptest.NewRequest(http.MethodPost, "/api/orders", http.NoBody)
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing required fields"}`, w.Body.String())
	mockService.AssertExpectations(t)
}
