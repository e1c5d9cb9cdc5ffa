package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/app"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := h.decodeAndValidate(w, r, validators.RegisterUserSchema)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, models.User{
		Name:     body.String("name"),
		Email:    body.String("email"),
		Password: body.String("password"),
	})
	if err != nil {
		log.Err(err).Msg("user registration failed")
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.ID).Msg("user registered")
	writeData(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := decodeBody(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, models.Credentials{
		Email:    body.String("email"),
		Password: body.String("password"),
	})
	if err != nil {
		log.Info().Err(err).Msg("login rejected")
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")
	writeData(w, r, models.AccessToken{AccessToken: token.SignedString}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		h.writeError(w, r, ErrNoUserInContext)
		return
	}

	user, err := h.services.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, user, http.StatusOK)
}

func (h *Handler) resetUsers(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.ResetUsers(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeMessage(w, r, app.MsgUsersReset, http.StatusOK)
}
