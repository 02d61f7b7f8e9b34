package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/chronomap-dev/chronomap/pkg/catalog"
	"github.com/chronomap-dev/chronomap/pkg/civil"
	"github.com/chronomap-dev/chronomap/pkg/convert"
	"github.com/chronomap-dev/chronomap/pkg/dst"
	"github.com/chronomap-dev/chronomap/pkg/overlap"
	"github.com/chronomap-dev/chronomap/pkg/store"
	"github.com/chronomap-dev/chronomap/pkg/tzfmt"
)

type server struct {
	logger  *slog.Logger
	limiter *rateLimiter
	store   *store.Store
}

func (s *server) routes(r *mux.Router) {
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/zones", s.handleZones).Methods(http.MethodGet)
	api.HandleFunc("/zones/search", s.handleSearch).Methods(http.MethodGet)
	api.HandleFunc("/zone/info", s.handleInfo).Methods(http.MethodGet)
	api.HandleFunc("/zone/transitions", s.handleTransitions).Methods(http.MethodGet)
	api.HandleFunc("/convert", s.handleConvert).Methods(http.MethodGet)
	api.HandleFunc("/overlap", s.handleOverlap).Methods(http.MethodGet)
	api.HandleFunc("/meeting/overlap", s.handleMeetingOverlap).Methods(http.MethodPost)
	api.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	if s.store != nil {
		api.HandleFunc("/saved-zones", s.handleSavedZonesGet).Methods(http.MethodGet)
		api.HandleFunc("/saved-zones", s.handleSavedZonesPut).Methods(http.MethodPut)
		api.HandleFunc("/contacts", s.handleContactsList).Methods(http.MethodGet)
		api.HandleFunc("/contacts", s.handleContactCreate).Methods(http.MethodPost)
		api.HandleFunc("/contacts/{id}", s.handleContactUpdate).Methods(http.MethodPut)
		api.HandleFunc("/contacts/{id}", s.handleContactDelete).Methods(http.MethodDelete)
		api.HandleFunc("/settings", s.handleSettingsGet).Methods(http.MethodGet)
		api.HandleFunc("/settings", s.handleSettingsPut).Methods(http.MethodPut)
		api.HandleFunc("/participants", s.handleParticipantsGet).Methods(http.MethodGet)
		api.HandleFunc("/participants", s.handleParticipantsPut).Methods(http.MethodPut)
	}
}

func (s *server) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !s.limiter.allow(ip) {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("failed to encode response", "error", err)
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// atParam reads an optional ?at=RFC3339 parameter, defaulting to now.
func atParam(r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("at")
	if raw == "" {
		return time.Now(), true
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type zoneEntry struct {
	ID       string `json:"id"`
	IANAName string `json:"ianaName"`
	Label    string `json:"label"`
	Offset   string `json:"offset"`
	Time     string `json:"time"`
}

func zoneEntries(entries []catalog.Entry) []zoneEntry {
	now := time.Now()
	out := make([]zoneEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, zoneEntry{
			ID:       e.ID,
			IANAName: e.IANAName,
			Label:    e.Label,
			Offset:   tzfmt.OffsetString(e.IANAName),
			Time:     tzfmt.ClockIn(e.IANAName, now),
		})
	}
	return out
}

func (s *server) handleZones(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, zoneEntries(catalog.All()))
}

func (s *server) handleSearch(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, zoneEntries(catalog.Search(r.URL.Query().Get("q"))))
}

func (s *server) handleInfo(w http.ResponseWriter, r *http.Request) {
	zone := r.URL.Query().Get("zone")
	if zone == "" {
		s.writeError(w, http.StatusBadRequest, "zone parameter required")
		return
	}
	at, ok := atParam(r)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "invalid at parameter")
		return
	}
	s.writeJSON(w, http.StatusOK, dst.Info(zone, at))
}

func (s *server) handleTransitions(w http.ResponseWriter, r *http.Request) {
	zone := r.URL.Query().Get("zone")
	if !civil.Valid(zone) {
		s.writeError(w, http.StatusBadRequest, "invalid zone")
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		year = time.Now().UTC().Year()
	}

	transitions := dst.Transitions(zone, year)
	out := make([]string, 0, len(transitions))
	for _, t := range transitions {
		out = append(out, t.UTC().Format(time.RFC3339))
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"zone": zone, "year": year, "transitions": out,
	})
}

func (s *server) handleConvert(w http.ResponseWriter, r *http.Request) {
	zonesParam := r.URL.Query().Get("zones")
	if zonesParam == "" {
		s.writeError(w, http.StatusBadRequest, "zones parameter required")
		return
	}
	at, ok := atParam(r)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "invalid at parameter")
		return
	}
	s.writeJSON(w, http.StatusOK, convert.Across(at, strings.Split(zonesParam, ",")))
}

func hoursParam(r *http.Request, name string, fallback float64) float64 {
	if raw := r.URL.Query().Get(name); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return fallback
}

func (s *server) handleOverlap(w http.ResponseWriter, r *http.Request) {
	zoneA := r.URL.Query().Get("a")
	zoneB := r.URL.Query().Get("b")
	if !civil.Valid(zoneA) || !civil.Valid(zoneB) {
		s.writeError(w, http.StatusBadRequest, "both a and b must be valid zones")
		return
	}
	workStart := hoursParam(r, "start", overlap.DefaultWorkStart)
	workEnd := hoursParam(r, "end", overlap.DefaultWorkEnd)

	win := overlap.Hours(zoneA, zoneB, workStart, workEnd)
	if win == nil {
		s.writeJSON(w, http.StatusOK, map[string]any{"hasOverlap": false})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"hasOverlap": true, "window": win})
}

func (s *server) handleMeetingOverlap(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Participants []overlap.Participant `json:"participants"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for _, p := range req.Participants {
		if !civil.Valid(p.Timezone) {
			s.writeError(w, http.StatusBadRequest, "invalid zone "+p.Timezone)
			return
		}
	}
	result := overlap.MultiZone(req.Participants)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"result":    result,
		"shareText": overlap.ShareText(result),
	})
}

func (s *server) handleSavedZonesGet(w http.ResponseWriter, _ *http.Request) {
	zones, err := s.store.SavedZones()
	if err != nil {
		s.logger.Error("loading saved zones", "error", err)
		s.writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if zones == nil {
		zones = []string{}
	}
	s.writeJSON(w, http.StatusOK, zones)
}

func (s *server) handleSavedZonesPut(w http.ResponseWriter, r *http.Request) {
	var zones []string
	if err := json.NewDecoder(r.Body).Decode(&zones); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for _, zone := range zones {
		if !civil.Valid(zone) {
			s.writeError(w, http.StatusBadRequest, "invalid zone "+zone)
			return
		}
	}
	if err := s.store.SaveZones(zones); err != nil {
		s.logger.Error("saving zones", "error", err)
		s.writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	s.writeJSON(w, http.StatusOK, zones)
}

func (s *server) handleContactsList(w http.ResponseWriter, _ *http.Request) {
	contacts, err := s.store.Contacts()
	if err != nil {
		s.logger.Error("listing contacts", "error", err)
		s.writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if contacts == nil {
		contacts = []store.Contact{}
	}
	s.writeJSON(w, http.StatusOK, contacts)
}

func (s *server) handleContactCreate(w http.ResponseWriter, r *http.Request) {
	var c store.Contact
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !civil.Valid(c.Timezone) {
		s.writeError(w, http.StatusBadRequest, "invalid zone "+c.Timezone)
		return
	}
	if err := s.store.CreateContact(&c); err != nil {
		s.logger.Error("creating contact", "error", err)
		s.writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	s.writeJSON(w, http.StatusCreated, c)
}

func (s *server) handleContactUpdate(w http.ResponseWriter, r *http.Request) {
	var c store.Contact
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c.ID = mux.Vars(r)["id"]
	if !civil.Valid(c.Timezone) {
		s.writeError(w, http.StatusBadRequest, "invalid zone "+c.Timezone)
		return
	}
	if err := s.store.UpdateContact(c); err != nil {
		if errors.Is(err, store.ErrContactNotFound) {
			s.writeError(w, http.StatusNotFound, "contact not found")
			return
		}
		s.logger.Error("updating contact", "error", err)
		s.writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	s.writeJSON(w, http.StatusOK, c)
}

func (s *server) handleContactDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteContact(mux.Vars(r)["id"]); err != nil {
		if errors.Is(err, store.ErrContactNotFound) {
			s.writeError(w, http.StatusNotFound, "contact not found")
			return
		}
		s.logger.Error("deleting contact", "error", err)
		s.writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleSettingsGet(w http.ResponseWriter, _ *http.Request) {
	settings, err := s.store.Settings()
	if err != nil {
		s.logger.Error("loading settings", "error", err)
		s.writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	s.writeJSON(w, http.StatusOK, settings)
}

func (s *server) handleSettingsPut(w http.ResponseWriter, r *http.Request) {
	var settings store.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !civil.Valid(settings.MyTimezone) {
		s.writeError(w, http.StatusBadRequest, "invalid zone "+settings.MyTimezone)
		return
	}
	if err := s.store.PutSettings(settings); err != nil {
		s.logger.Error("saving settings", "error", err)
		s.writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	s.writeJSON(w, http.StatusOK, settings)
}

func (s *server) handleParticipantsGet(w http.ResponseWriter, _ *http.Request) {
	participants, err := s.store.Participants()
	if err != nil {
		s.logger.Error("loading participants", "error", err)
		s.writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if participants == nil {
		participants = []overlap.Participant{}
	}
	s.writeJSON(w, http.StatusOK, participants)
}

func (s *server) handleParticipantsPut(w http.ResponseWriter, r *http.Request) {
	var participants []overlap.Participant
	if err := json.NewDecoder(r.Body).Decode(&participants); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for _, p := range participants {
		if !civil.Valid(p.Timezone) {
			s.writeError(w, http.StatusBadRequest, "invalid zone "+p.Timezone)
			return
		}
	}
	if err := s.store.SaveParticipants(participants); err != nil {
		s.logger.Error("saving participants", "error", err)
		s.writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	s.writeJSON(w, http.StatusOK, participants)
}
