package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// cleanupAnnouncements periodically purges announcements that expired longer
// than the configured retention ago. Recently expired ones stay visible in the
// manage view so staff can extend them.
func (s *Server) cleanupAnnouncements() {
	for {
		s.doCleanupAnnouncements()
		time.Sleep(time.Duration(s.Cfg.Announcements.CleanupInterval))
	}
}

func (s *Server) doCleanupAnnouncements() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	before := time.Now().Add(-time.Duration(s.Cfg.Announcements.RetainExpired))
	rows, err := s.DB.DeleteAnnouncementsExpiredBefore(ctx, before)
	if err != nil {
		slog.Error("failed to cleanup expired announcements", slog.Any("err", err))
		return
	}

	if rows > 0 {
		s.SendNotification(ctx, fmt.Sprintf("Cleaned up `%d` expired announcements", rows))
	}
}
