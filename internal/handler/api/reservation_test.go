//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"fleet-booking/internal/handler/api"
	resdto "fleet-booking/internal/handler/dto/response"
	"fleet-booking/internal/usecase/commands"
	"fleet-booking/tests/common/builder"
	"fleet-booking/tests/common/httptest"
	"fleet-booking/tests/common/testutil"
	commandsmock "fleet-booking/tests/mock/commands"
	queriesmock "fleet-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations", s.handler.Create)
	s.router.GET("/reservations", s.handler.List)
	s.router.GET("/reservations/:id", s.handler.Get)
	s.router.POST("/reservations/:id/confirm", s.handler.Confirm)
	s.router.POST("/reservations/:id/cancel", s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	reservationID := uuid.New()

	s.Run("success: returns 201 Created with the new id", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(reservationID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(reservationID, body.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: clientId", mutate: testutil.Field("clientId", nil)},
			{name: "missing field: vehicleId", mutate: testutil.Field("vehicleId", nil)},
			{name: "missing field: reservedDate", mutate: testutil.Field("reservedDate", nil)},
			{name: "missing field: expectedRentalDate", mutate: testutil.Field("expectedRentalDate", nil)},
			{name: "malformed date", mutate: testutil.Field("reservedDate", "April 1st")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
			})
		}
	})

	s.Run("error: maps booking errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{
				name:           "ineligible client",
				commandsError:  commands.ErrIneligibleClient,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedCode:   "INELIGIBLE_CLIENT",
			},
			{
				name:           "vehicle unavailable",
				commandsError:  commands.ErrVehicleUnavailable,
				expectedStatus: http.StatusConflict,
				expectedCode:   "VEHICLE_UNAVAILABLE",
			},
			{
				name:           "invalid dates",
				commandsError:  commands.ErrInvalidDates,
				expectedStatus: http.StatusBadRequest,
				expectedCode:   "INVALID_DATES",
			},
			{
				name:           "negative deposit",
				commandsError:  commands.ErrValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedCode:   "VALIDATION",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *ReservationHandlerTestSuite) TestConfirm() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/confirm"

	rentalID := uuid.New()

	s.Run("success: returns 200 OK with the derived rental id", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), reservationID).
			Return(&commands.ConfirmReservationResult{RentalID: rentalID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var body resdto.ConfirmReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(rentalID, body.RentalID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/invalid-uuid/confirm", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})

	s.Run("error: maps booking errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{
				name:           "reservation not found",
				commandsError:  commands.ErrNotFound,
				expectedStatus: http.StatusNotFound,
				expectedCode:   "NOT_FOUND",
			},
			{
				name:           "already confirmed",
				commandsError:  commands.ErrIllegalTransition,
				expectedStatus: http.StatusConflict,
				expectedCode:   "ILLEGAL_TRANSITION",
			},
			{
				name:           "storage failure",
				commandsError:  errors.New("connection refused"),
				expectedStatus: http.StatusInternalServerError,
				expectedCode:   "STORAGE_ERROR",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Confirm(gomock.Any(), reservationID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/cancel"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), reservationID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict when already terminal", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), reservationID).
			Return(commands.ErrIllegalTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "ILLEGAL_TRANSITION")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	returnView := builder.NewReservationBuilder().BuildView()
	returnView.ID = reservationID

	s.Run("success: returns 200 OK with ReservationResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reservationID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reservationID, response.ID)
		s.Equal(returnView.VehiclePlate, response.VehiclePlate)
		s.Equal(returnView.DepositCents, response.DepositCents)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/invalid-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})
}
