package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/assessment"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/service"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/transport/rest/middleware"
)

// AssessmentHandler handles the rider questionnaire endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// StartRequest is the request body for starting an assessment
type StartRequest struct {
	RiderID string `json:"riderId,omitempty"`
}

// Start handles POST /v1/assessments
func (h *AssessmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	resp, err := h.assessmentSvc.Start(r.Context(), req.RiderID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// CurrentQuestion handles GET /v1/assessments/{id}/question/current
func (h *AssessmentHandler) CurrentQuestion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.authorized(r, id) {
		writeError(w, http.StatusForbidden, "token not valid for this assessment")
		return
	}

	q, err := h.assessmentSvc.CurrentQuestion(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if q == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"completed": true})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"question": q, "completed": false})
}

// SubmitAnswer handles POST /v1/assessments/{id}/answers
func (h *AssessmentHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.authorized(r, id) {
		writeError(w, http.StatusForbidden, "token not valid for this assessment")
		return
	}

	var req model.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.assessmentSvc.SubmitAnswer(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, assessment.ErrAnswerShape) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Complete handles POST /v1/assessments/{id}/complete
func (h *AssessmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.authorized(r, id) {
		writeError(w, http.StatusForbidden, "token not valid for this assessment")
		return
	}

	profile, err := h.assessmentSvc.Complete(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// GetProfile handles GET /v1/assessments/{id}/profile
func (h *AssessmentHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.authorized(r, id) {
		writeError(w, http.StatusForbidden, "token not valid for this assessment")
		return
	}

	profile, err := h.assessmentSvc.GetProfile(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// authorized checks the rider token is scoped to the assessment in the path
func (h *AssessmentHandler) authorized(r *http.Request, assessmentID string) bool {
	return middleware.GetAssessmentID(r.Context()) == assessmentID
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAssessmentNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAssessmentComplete),
		errors.Is(err, service.ErrFlowNotFinished),
		errors.Is(err, service.ErrQuestionNotInFlow):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
