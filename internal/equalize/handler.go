package equalize

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fitcomp/fitcomp/internal/remote"
	"github.com/fitcomp/fitcomp/internal/telemetry/tracing"
	"github.com/fitcomp/fitcomp/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=equalize_test

type factorsStore interface {
	UpdateScalingFactors(ctx context.Context, userID int, factors remote.ScalingFactors) error
}

// SaveResponse echoes the computed factors back after a successful save so
// the client can render them without a second calculation.
type SaveResponse struct {
	Factors Factors `json:"factors"`
	Saved   Ratios  `json:"saved"`
}

type Handler struct {
	store factorsStore
}

func NewHandler(store factorsStore) *Handler {
	return &Handler{
		store: store,
	}
}

// HandlePreview computes the equalizing factors for the posted biometrics.
// Nothing is stored, the inputs live only for the duration of the request.
func (handler *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.equalize.preview")
	defer span.End()

	var biometrics Biometrics
	if err := json.NewDecoder(r.Body).Decode(&biometrics); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	writeJSON(w, Compute(biometrics))
}

// HandleSave computes the factors and persists only the resulting two
// multipliers to the user profile. Biometrics are never sent upstream.
func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.equalize.save")
	defer span.End()

	userID, err := strconv.Atoi(mux.Vars(r)["userID"])
	if err != nil {
		http.Error(w, "invalid userID", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("user.id", userID))

	var biometrics Biometrics
	if err := json.NewDecoder(r.Body).Decode(&biometrics); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	factors := Compute(biometrics)
	ratios := factors.Ratios()

	err = handler.store.UpdateScalingFactors(ctx, userID, remote.ScalingFactors{
		ScalingKcal:     ratios.ScalingKcal,
		ScalingDistance: ratios.ScalingDistance,
	})
	if err != nil {
		log.Errorf("save scaling factors for user %d: %s", userID, err)
		http.Error(w, "failed to save scaling factors", http.StatusInternalServerError)
		return
	}

	writeJSON(w, SaveResponse{
		Factors: factors,
		Saved:   ratios,
	})
}

func writeJSON(w http.ResponseWriter, payload any) {
	resp, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal equalize response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", resp)
}
