package handlers

import (
	"time"

	"github.com/rogerio-castellano/stock-keeper/internal/repo"
	"github.com/sirupsen/logrus"
)

// Server carries the dependencies shared by every handler.
type Server struct {
	products repo.ProductRepository
	history  repo.HistoryRepository
	log      logrus.FieldLogger
	now      func() time.Time
}

func NewServer(products repo.ProductRepository, history repo.HistoryRepository, log logrus.FieldLogger) *Server {
	return &Server{
		products: products,
		history:  history,
		log:      log,
		now:      time.Now,
	}
}

// WithClock replaces the clock used to stamp history entries.
func (s *Server) WithClock(now func() time.Time) *Server {
	s.now = now
	return s
}
