package services

import (
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dda-estates/realestate-backend/utils"
)

// KeepAliveService periodically pings the service's own public URL so the
// hosting platform does not idle it out. Start and Stop are idempotent; ping
// failures are logged and swallowed so the schedule keeps going.
type KeepAliveService struct {
	mu          sync.Mutex
	serverURL   string
	interval    time.Duration
	warmup      time.Duration
	client      *http.Client
	cron        *cron.Cron
	warmupTimer *time.Timer
	running     bool
	pingCount   int64
	startTime   time.Time
}

type KeepAliveStatus struct {
	Running   bool      `json:"isRunning"`
	ServerURL string    `json:"serverUrl"`
	Interval  string    `json:"interval"`
	PingCount int64     `json:"pingCount"`
	Uptime    string    `json:"uptime,omitempty"`
	StartTime time.Time `json:"startTime,omitempty"`
}

func NewKeepAliveService(serverURL string, interval, warmup time.Duration) *KeepAliveService {
	return &KeepAliveService{
		serverURL: serverURL,
		interval:  interval,
		warmup:    warmup,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Start arms the warm-up timer; after it fires the service pings once and
// hands the schedule to cron.
func (s *KeepAliveService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		utils.Logger.Warn("Keepalive service is already running")
		return
	}

	s.cron = cron.New()
	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), s.Ping); err != nil {
		utils.Logger.Errorf("Failed to schedule keepalive pings: %v", err)
		return
	}

	s.running = true
	s.startTime = time.Now()
	s.warmupTimer = time.AfterFunc(s.warmup, func() {
		s.Ping()
		s.mu.Lock()
		if s.running {
			s.cron.Start()
		}
		s.mu.Unlock()
	})

	utils.Logger.Infof("Keepalive service started for %s (interval %s, warmup %s)", s.serverURL, s.interval, s.warmup)
}

func (s *KeepAliveService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		utils.Logger.Warn("Keepalive service is not running")
		return
	}

	if s.warmupTimer != nil {
		s.warmupTimer.Stop()
	}
	if s.cron != nil {
		s.cron.Stop()
	}
	s.running = false
	utils.Logger.Infof("Keepalive service stopped after %d pings", s.pingCount)
}

// Ping hits the public keepalive endpoint once.
func (s *KeepAliveService) Ping() {
	start := time.Now()
	resp, err := s.client.Get(s.serverURL + "/keepalive")
	if err != nil {
		utils.Logger.Errorf("Keepalive ping failed: %v", err)
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	s.mu.Lock()
	s.pingCount++
	count := s.pingCount
	s.mu.Unlock()

	if resp.StatusCode == http.StatusOK {
		utils.Logger.Infof("Keepalive ping #%d successful (%s)", count, time.Since(start).Round(time.Millisecond))
	} else {
		utils.Logger.Warnf("Keepalive ping #%d returned status %d", count, resp.StatusCode)
	}
}

func (s *KeepAliveService) Status() KeepAliveStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := KeepAliveStatus{
		Running:   s.running,
		ServerURL: s.serverURL,
		Interval:  s.interval.String(),
		PingCount: s.pingCount,
	}
	if s.running {
		status.StartTime = s.startTime
		status.Uptime = formatUptime(time.Since(s.startTime))
	}
	return status
}

func formatUptime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
