package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"sillah/internal/advisor"
	"sillah/internal/alerts"
	"sillah/internal/awareness"
	"sillah/internal/family"
	"sillah/internal/logs"
	"sillah/internal/message"
	"sillah/internal/metrics"
)

// Handler holds dependencies for HTTP handlers. It keeps no per-user state:
// every request carries the full family history it wants assessed.
type Handler struct {
	advisor *advisor.Advisor
	metrics *metrics.Registry
	logger  *logs.Logger
	lang    message.Lang
}

// NewHandler creates a new API handler. lang is used when a request does
// not name one.
func NewHandler(
	adv *advisor.Advisor,
	reg *metrics.Registry,
	logger *logs.Logger,
	lang message.Lang,
) *Handler {
	return &Handler{
		advisor: adv,
		metrics: reg,
		logger:  logger,
		lang:    lang,
	}
}

/* ---------------- POST /assessments ---------------- */

type healthEventRequest struct {
	Condition      string `json:"condition"`
	AgeAtDiagnosis int    `json:"age_at_diagnosis"`
	Description    string `json:"description,omitempty"`
}

type familyMemberRequest struct {
	Relation     string               `json:"relation"`
	Age          int                  `json:"age"`
	Condition    string               `json:"condition,omitempty"`
	HealthEvents []healthEventRequest `json:"health_events,omitempty"`
}

type assessmentRequest struct {
	Name          string                `json:"name"`
	Lang          string                `json:"lang,omitempty"`
	FamilyMembers []familyMemberRequest `json:"family_members"`
}

func (h *Handler) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	var req assessmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	lang, err := h.resolveLang(req.Lang)
	if err != nil {
		h.fail(w, err)
		return
	}

	user, err := buildUser(req)
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.advisor.Advise(user, lang))
}

// buildUser runs every constructor so invalid input is rejected before
// anything is evaluated.
func buildUser(req assessmentRequest) (*family.User, error) {
	user, err := family.NewUser(req.Name)
	if err != nil {
		return nil, err
	}

	for i, mr := range req.FamilyMembers {
		member, err := buildMember(mr)
		if err != nil {
			return nil, fmt.Errorf("family_members[%d]: %w", i, err)
		}
		if err := user.AddFamilyMember(member); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func buildMember(mr familyMemberRequest) (*family.FamilyMember, error) {
	var (
		member *family.FamilyMember
		err    error
	)
	if strings.TrimSpace(mr.Condition) != "" {
		member, err = family.NewFamilyMemberWithCondition(mr.Relation, mr.Age, mr.Condition)
	} else {
		member, err = family.NewFamilyMember(mr.Relation, mr.Age)
	}
	if err != nil {
		return nil, err
	}

	for j, er := range mr.HealthEvents {
		event, err := family.NewHealthEvent(er.Condition, er.AgeAtDiagnosis, er.Description)
		if err != nil {
			return nil, fmt.Errorf("health_events[%d]: %w", j, err)
		}
		if err := member.AddHealthEvent(event); err != nil {
			return nil, err
		}
	}
	return member, nil
}

/* ---------------- POST /alerts ---------------- */

type alertsResponse struct {
	Alerts []alerts.Alert `json:"alerts"`
}

// CreateAlerts takes the same body as CreateAssessment. Alerts are English
// only, so lang is validated but does not change the text.
func (h *Handler) CreateAlerts(w http.ResponseWriter, r *http.Request) {
	var req assessmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if _, err := h.resolveLang(req.Lang); err != nil {
		h.fail(w, err)
		return
	}

	user, err := buildUser(req)
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, alertsResponse{Alerts: h.advisor.Alerts(user)})
}

/* ---------------- POST /appointments ---------------- */

type appointmentRequest struct {
	Name   string `json:"name"`
	Clinic string `json:"clinic,omitempty"`
}

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req appointmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := family.NewUser(req.Name)
	if err != nil {
		h.fail(w, err)
		return
	}

	appt, err := h.advisor.Book(user, req.Clinic)
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, appt)
}

/* ---------------- GET /clinics ---------------- */

func (h *Handler) GetClinic(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.advisor.FindClinic(r.URL.Query().Get("name")))
}

/* ---------------- GET /awareness/topics[/{id}] ---------------- */

func (h *Handler) GetTopics(w http.ResponseWriter, r *http.Request) {
	lang, err := h.resolveLang(r.URL.Query().Get("lang"))
	if err != nil {
		h.fail(w, err)
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/awareness/topics"), "/")
	if id == "" {
		writeJSON(w, http.StatusOK, awareness.Topics(lang))
		return
	}

	n, err := strconv.Atoi(id)
	if err != nil {
		writeError(w, http.StatusBadRequest, "topic id must be a number")
		return
	}

	topic, err := awareness.FindTopic(lang, n)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, topic)
}

/* ---------------- GET /awareness/checklist ---------------- */

type checklistResponse struct {
	awareness.Checklist
	Done  int `json:"done"`
	Total int `json:"total"`
}

func (h *Handler) GetChecklist(w http.ResponseWriter, r *http.Request) {
	c := awareness.DefaultChecklist()
	done, total := c.Progress()
	writeJSON(w, http.StatusOK, checklistResponse{Checklist: c, Done: done, Total: total})
}

/* ---------------- GET /metrics ---------------- */

func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.metrics.Snapshot())
}

/* ---------------- helpers ---------------- */

// maxBodyBytes caps every request body; a family history is a few KiB.
const maxBodyBytes = 1 << 20

// decodeBody reads one JSON value from a size-limited body. It writes the
// error response itself and reports whether the handler should go on.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return false
	}
	writeError(w, http.StatusBadRequest, "invalid json body")
	return false
}

func (h *Handler) resolveLang(s string) (message.Lang, error) {
	if strings.TrimSpace(s) == "" {
		return h.lang, nil
	}
	lang, err := message.ParseLang(s)
	if err != nil {
		return "", &family.ValidationError{Field: "lang", Message: err.Error()}
	}
	return lang, nil
}

// fail maps invalid-argument errors to 400 and everything else to 500.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, family.ErrInvalidArgument) {
		h.metrics.Inc(metrics.ValidationFailuresTotal)
		h.logger.WarnFields("validation failed", map[string]any{"error": err.Error()})
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Error("request failed: " + err.Error())
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
