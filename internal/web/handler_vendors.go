package web

import (
	"encoding/json"
	"net/http"

	"github.com/mrmoe28/solarscheduler/internal/domain"
)

func (s *Server) handleListVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := s.vendors.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if vendors == nil {
		vendors = []*domain.Vendor{}
	}
	s.writeJSON(w, http.StatusOK, vendors)
}

func (s *Server) handleCreateVendor(w http.ResponseWriter, r *http.Request) {
	var in domain.VendorInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	// New vendors are listed until explicitly deactivated.
	in.Active = true

	vendor, err := s.vendors.Create(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, vendor)
}

func (s *Server) handleGetVendor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid vendor id")
		return
	}

	vendor, err := s.vendors.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if vendor == nil {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	s.writeJSON(w, http.StatusOK, vendor)
}

func (s *Server) handleUpdateVendor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid vendor id")
		return
	}

	var in domain.VendorInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	vendor, err := s.vendors.Update(r.Context(), id, in)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, vendor)
}

// handleDeleteVendor deactivates the vendor by default; ?purge=1 removes the
// record permanently.
func (s *Server) handleDeleteVendor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid vendor id")
		return
	}

	if r.URL.Query().Get("purge") == "1" {
		err = s.vendors.Delete(r.Context(), id)
	} else {
		err = s.vendors.Deactivate(r.Context(), id)
	}
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
