package server

import (
	"brawlstats-sync/internal/dto"
	"brawlstats-sync/internal/repository"
	"fmt"
	"net/http"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, jsonResponse{"status": "ok"})
}

func (s *Server) syncAll(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Scheduler.RunOnce(r.Context()); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, jsonResponse{"status": "ok"})
}

func (s *Server) syncBrawlers(w http.ResponseWriter, r *http.Request) {
	brawlers, err := s.deps.Brawlers.ParseAll(r.Context())
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	items := make([]any, 0, len(brawlers))
	for _, b := range brawlers {
		items = append(items, dto.BrawlerFromEntity(*b).ToRecord())
	}
	s.writeJSON(w, r, http.StatusOK, jsonResponse{"count": len(items), "items": items})
}

func (s *Server) syncBrawler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	b, err := s.deps.Brawlers.ParseByExternalID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, dto.BrawlerFromEntity(*b).ToRecord())
}

func (s *Server) syncEventRotations(w http.ResponseWriter, r *http.Request) {
	rotations, err := s.deps.EventRotations.ParseAll(r.Context())
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	items := make([]any, 0, len(rotations))
	for _, rot := range rotations {
		items = append(items, dto.EventRotationFromEntity(*rot).ToRecord())
	}
	s.writeJSON(w, r, http.StatusOK, jsonResponse{"count": len(items), "items": items})
}

func (s *Server) syncClub(w http.ResponseWriter, r *http.Request) {
	tag, err := tagParam(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	c, err := s.deps.Clubs.ParseByTag(r.Context(), tag)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, dto.ClubFromEntity(*c).ToRecord())
}

func (s *Server) syncPlayer(w http.ResponseWriter, r *http.Request) {
	tag, err := tagParam(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	p, err := s.deps.Players.ParseByTag(r.Context(), tag)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, dto.PlayerFromEntity(*p).ToRecord())
}

func (s *Server) getBrawler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	b, err := s.deps.BrawlerStore.Find(r.Context(), repository.ByExtID(id))
	if err == nil && b == nil {
		err = errNotFound
	}
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, dto.BrawlerFromEntity(*b).ToRecord())
}

func (s *Server) getClub(w http.ResponseWriter, r *http.Request) {
	tag, err := tagParam(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	c, err := s.deps.ClubStore.Find(r.Context(), repository.ByTag(tag))
	if err == nil && c == nil {
		err = errNotFound
	}
	if err == nil && c.IsStub() {
		err = fmt.Errorf("%w: club %s has not been synced yet", errNotFound, tag)
	}
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, dto.ClubFromEntity(*c).ToRecord())
}

func (s *Server) getPlayer(w http.ResponseWriter, r *http.Request) {
	tag, err := tagParam(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	p, err := s.deps.PlayerStore.Find(r.Context(), repository.ByTag(tag))
	if err == nil && p == nil {
		err = errNotFound
	}
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, dto.PlayerFromEntity(*p).ToRecord())
}
