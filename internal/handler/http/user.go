package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/obracontrol/asistencia-backend-go/internal/domain/user"
	"github.com/obracontrol/asistencia-backend-go/internal/handler/http/response"
	userService "github.com/obracontrol/asistencia-backend-go/internal/service/user"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService userService.UserService
}

func NewUserHandler(userSvc userService.UserService) UserHandler {
	return &userHandlerImpl{userService: userSvc}
}

// Create implements UserHandler.
func (h *userHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.userService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created", created)
}
