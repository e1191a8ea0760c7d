package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hostsctl/hostsctl/src/internal/backup"
	"github.com/hostsctl/hostsctl/src/internal/check"
	"github.com/hostsctl/hostsctl/src/internal/hosts"
	"github.com/hostsctl/hostsctl/src/internal/log"
)

// HostsStore is the subset of store.Store used by the API.
type HostsStore interface {
	Path() string
	LoadAll() []hosts.Entry
	AddEntry(ip, hostname string) error
	SaveAll(entries []hosts.Entry) error
}

// BackupManager is the subset of backup.Manager used by the API.
type BackupManager interface {
	Backup() (string, error)
	List() ([]backup.Info, error)
	Restore(name string) (string, error)
}

// EditorLauncher opens a file in an external editor.
type EditorLauncher interface {
	Open(path string) error
}

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 4 << 20

// Handler manages all API endpoints and dependencies.
type Handler struct {
	store   HostsStore
	backups BackupManager
	editor  EditorLauncher
}

// NewHandler creates a new API handler.
func NewHandler(store HostsStore, backups BackupManager, editor EditorLauncher) *Handler {
	return &Handler{store: store, backups: backups, editor: editor}
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(DataResponse{Data: data})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		WriteInvalidRequest(w, "Invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// GetHosts returns every entry of the hosts file. An unreadable file yields an empty list.
func (h *Handler) GetHosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HostsResponse{
		Path:    h.store.Path(),
		Entries: h.store.LoadAll(),
	})
}

// AddHost appends one enabled mapping.
func (h *Handler) AddHost(w http.ResponseWriter, r *http.Request) {
	var req AddHostRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.store.AddEntry(req.IP, req.Hostname); err != nil {
		WriteDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, hosts.Entry{IP: req.IP, Hostname: req.Hostname, Enabled: true})
}

// SaveHosts replaces the hosts file with the given entries.
func (h *Handler) SaveHosts(w http.ResponseWriter, r *http.Request) {
	var req SaveHostsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Entries == nil {
		req.Entries = []hosts.Entry{}
	}

	if err := h.store.SaveAll(req.Entries); err != nil {
		WriteDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, HostsResponse{Path: h.store.Path(), Entries: req.Entries})
}

// CreateBackup copies the hosts file to a timestamped backup.
func (h *Handler) CreateBackup(w http.ResponseWriter, r *http.Request) {
	path, err := h.backups.Backup()
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, BackupResponse{Path: path})
}

// ListBackups returns the available backups.
func (h *Handler) ListBackups(w http.ResponseWriter, r *http.Request) {
	backups, err := h.backups.List()
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, BackupsResponse{Backups: backups})
}

// RestoreBackup replaces the hosts file with a backup.
func (h *Handler) RestoreBackup(w http.ResponseWriter, r *http.Request) {
	safety, err := h.backups.Restore(chi.URLParam(r, "name"))
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RestoreResponse{SafetyBackup: safety})
}

// OpenEditor opens the hosts file in the external editor without waiting for it.
func (h *Handler) OpenEditor(w http.ResponseWriter, r *http.Request) {
	if err := h.editor.Open(h.store.Path()); err != nil {
		log.Warnf("Failed to open editor: %v", err)
		WriteInternalError(w, err.Error())
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// Check runs the self-check against the hosts file.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, check.Run(h.store.Path()))
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
