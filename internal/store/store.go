// Package store 는 캠페인과 페르소나 영속화를 담당한다.
// Valkey 백엔드가 기본이고, 비활성 시 메모리 백엔드로 동작한다.
package store

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/valkey-io/valkey-go"

	"github.com/campaignai/campaign-planner-go/internal/config"
	"github.com/campaignai/campaign-planner-go/internal/domain/campaign"
)

var (
	// ErrCampaignNotFound 는 캠페인 미존재 오류다.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrCampaignExists 는 캠페인 중복 생성 오류다.
	ErrCampaignExists = errors.New("campaign already exists")
	// ErrPersonasNotFound 는 저장된 페르소나 미존재 오류다.
	ErrPersonasNotFound = errors.New("personas not found")
	// ErrStoreDisabled 는 저장소 비활성 오류다.
	ErrStoreDisabled = errors.New("campaign store disabled")
)

type storeBackend int

const (
	storeBackendMemory storeBackend = iota
	storeBackendValkey
)

const indexKey = "campaigns:index"

// Store 는 캠페인 저장소다. 코어는 이 저장소를 직접 만지지 않고
// 핸들러 계층이 코어의 반환값을 여기 영속화한다.
type Store struct {
	client  valkey.Client
	cfg     *config.Config
	enabled bool
	backend storeBackend

	mu        sync.RWMutex
	campaigns map[string]campaign.Campaign
	personas  map[string][]campaign.Persona
}

// NewStore 는 캠페인 저장소를 생성한다.
func NewStore(cfg *config.Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	if !cfg.Store.Enabled {
		if cfg.Store.Required {
			return nil, errors.New("campaign store required but disabled")
		}
		return newMemoryStore(cfg), nil
	}

	conn, err := parseStoreURL(cfg.Store.URL)
	if err != nil {
		return nil, fmt.Errorf("parse campaign store url: %w", err)
	}

	var tlsConfig *tls.Config
	if conn.useTLS {
		host, _, splitErr := net.SplitHostPort(conn.addr)
		if splitErr != nil {
			return nil, fmt.Errorf("parse campaign store addr: %w", splitErr)
		}
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12, ServerName: host}
	}

	client, err := valkey.NewClient(valkey.ClientOption{
		TLSConfig:    tlsConfig,
		Username:     conn.username,
		Password:     conn.password,
		InitAddress:  []string{conn.addr},
		SelectDB:     conn.selectDB,
		DisableCache: cfg.Store.DisableCache,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to valkey: %w", err)
	}

	return &Store{
		client:  client,
		cfg:     cfg,
		enabled: true,
		backend: storeBackendValkey,
	}, nil
}

func newMemoryStore(cfg *config.Config) *Store {
	return &Store{
		cfg:       cfg,
		enabled:   true,
		backend:   storeBackendMemory,
		campaigns: make(map[string]campaign.Campaign),
		personas:  make(map[string][]campaign.Persona),
	}
}

// IsEnabled 는 저장소 활성화 여부를 반환한다.
func (s *Store) IsEnabled() bool {
	return s.enabled
}

// Close 는 Valkey 연결을 종료한다.
func (s *Store) Close() {
	if s == nil {
		return
	}
	if s.backend == storeBackendValkey && s.client != nil {
		s.client.Close()
	}
}

func campaignKey(id string) string {
	return fmt.Sprintf("campaign:%s", id)
}

func personasKey(id string) string {
	return fmt.Sprintf("campaign:%s:personas", id)
}

// Add 는 새 캠페인을 저장한다. 같은 ID가 있으면 실패한다.
func (s *Store) Add(ctx context.Context, c campaign.Campaign) error {
	if !s.enabled {
		return ErrStoreDisabled
	}
	if c.ID == "" {
		return errors.New("campaign id is empty")
	}
	if s.backend == storeBackendMemory {
		return s.addMemory(c)
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal campaign: %w", err)
	}

	setCmd := s.client.B().Set().Key(campaignKey(c.ID)).Value(string(data)).Nx().Build()
	result := s.client.Do(ctx, setCmd)
	if err := result.Error(); err != nil {
		if valkey.IsValkeyNil(err) {
			return fmt.Errorf("%w: %s", ErrCampaignExists, c.ID)
		}
		return fmt.Errorf("add campaign: %w", err)
	}

	indexCmd := s.client.B().Sadd().Key(indexKey).Member(c.ID).Build()
	if err := s.client.Do(ctx, indexCmd).Error(); err != nil {
		return fmt.Errorf("index campaign: %w", err)
	}
	return nil
}

// Get 은 캠페인을 조회한다.
func (s *Store) Get(ctx context.Context, id string) (*campaign.Campaign, error) {
	if !s.enabled {
		return nil, ErrStoreDisabled
	}
	if s.backend == storeBackendMemory {
		return s.getMemory(id)
	}

	cmd := s.client.B().Get().Key(campaignKey(id)).Build()
	result, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, fmt.Errorf("%w: %s", ErrCampaignNotFound, id)
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}

	var c campaign.Campaign
	if err := json.Unmarshal([]byte(result), &c); err != nil {
		return nil, fmt.Errorf("unmarshal campaign: %w", err)
	}
	return &c, nil
}

// Update 는 캠페인을 덮어쓴다. 상태 역행은 거부하고 updatedAt 을 갱신한다.
func (s *Store) Update(ctx context.Context, c campaign.Campaign) error {
	if !s.enabled {
		return ErrStoreDisabled
	}
	if s.backend == storeBackendMemory {
		return s.updateMemory(c)
	}

	existing, err := s.Get(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := checkStatus(existing, &c); err != nil {
		return err
	}

	c.UpdatedAt = time.Now()
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal campaign: %w", err)
	}

	cmd := s.client.B().Set().Key(campaignKey(c.ID)).Value(string(data)).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	return nil
}

// Launch 는 캠페인을 launched 상태로 전이해 저장한다.
// 상태 단조성은 도메인의 Launch 가 보장한다.
func (s *Store) Launch(ctx context.Context, id string, now time.Time) (*campaign.Campaign, error) {
	if !s.enabled {
		return nil, ErrStoreDisabled
	}

	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.Launch(now); err != nil {
		return nil, err
	}

	if s.backend == storeBackendMemory {
		if err := s.putMemory(*c); err != nil {
			return nil, err
		}
		return c, nil
	}

	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal campaign: %w", err)
	}
	cmd := s.client.B().Set().Key(campaignKey(id)).Value(string(data)).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return nil, fmt.Errorf("launch campaign: %w", err)
	}
	return c, nil
}

// List 는 모든 캠페인을 생성 시각 순으로 반환한다.
func (s *Store) List(ctx context.Context) ([]campaign.Campaign, error) {
	if !s.enabled {
		return nil, ErrStoreDisabled
	}
	if s.backend == storeBackendMemory {
		return s.listMemory(), nil
	}

	idsCmd := s.client.B().Smembers().Key(indexKey).Build()
	ids, err := s.client.Do(ctx, idsCmd).AsStrSlice()
	if err != nil {
		return nil, fmt.Errorf("list campaign ids: %w", err)
	}
	if len(ids) == 0 {
		return []campaign.Campaign{}, nil
	}

	cmds := make([]valkey.Completed, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, s.client.B().Get().Key(campaignKey(id)).Build())
	}

	campaigns := make([]campaign.Campaign, 0, len(ids))
	for _, result := range s.client.DoMulti(ctx, cmds...) {
		raw, err := result.ToString()
		if err != nil {
			if valkey.IsValkeyNil(err) {
				continue // 인덱스만 남은 항목은 건너뛴다
			}
			return nil, fmt.Errorf("list campaigns: %w", err)
		}
		var c campaign.Campaign
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			continue
		}
		campaigns = append(campaigns, c)
	}

	sortCampaigns(campaigns)
	return campaigns, nil
}

// SavePersonas 는 캠페인별 페르소나 목록을 저장한다.
func (s *Store) SavePersonas(ctx context.Context, campaignID string, personas []campaign.Persona) error {
	if !s.enabled {
		return ErrStoreDisabled
	}
	if s.backend == storeBackendMemory {
		s.mu.Lock()
		s.personas[campaignID] = campaign.ClonePersonas(personas)
		s.mu.Unlock()
		return nil
	}

	data, err := json.Marshal(personas)
	if err != nil {
		return fmt.Errorf("marshal personas: %w", err)
	}
	payload, err := encodePayload(data, s.cfg.Store.Compress)
	if err != nil {
		return err
	}

	cmd := s.client.B().Set().Key(personasKey(campaignID)).Value(string(payload)).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("save personas: %w", err)
	}
	return nil
}

// GetPersonas 는 캠페인별 페르소나 목록을 조회한다.
func (s *Store) GetPersonas(ctx context.Context, campaignID string) ([]campaign.Persona, error) {
	if !s.enabled {
		return nil, ErrStoreDisabled
	}
	if s.backend == storeBackendMemory {
		s.mu.RLock()
		stored, ok := s.personas[campaignID]
		s.mu.RUnlock()
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPersonasNotFound, campaignID)
		}
		return campaign.ClonePersonas(stored), nil
	}

	cmd := s.client.B().Get().Key(personasKey(campaignID)).Build()
	raw, err := s.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, fmt.Errorf("%w: %s", ErrPersonasNotFound, campaignID)
		}
		return nil, fmt.Errorf("get personas: %w", err)
	}

	data, err := decodePayload(raw)
	if err != nil {
		return nil, err
	}

	var personas []campaign.Persona
	if err := json.Unmarshal(data, &personas); err != nil {
		return nil, fmt.Errorf("unmarshal personas: %w", err)
	}
	return personas, nil
}

// Ping 은 Valkey 연결을 확인한다.
func (s *Store) Ping(ctx context.Context) error {
	if !s.enabled {
		return ErrStoreDisabled
	}
	if s.backend == storeBackendMemory {
		return nil
	}

	cmd := s.client.B().Ping().Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("ping valkey: %w", err)
	}
	return nil
}

// checkStatus 는 저장된 캠페인 대비 상태 역행을 거부한다.
func checkStatus(existing *campaign.Campaign, next *campaign.Campaign) error {
	probe := existing.Clone()
	return probe.AdvanceStatus(next.Status)
}

func sortCampaigns(campaigns []campaign.Campaign) {
	sort.Slice(campaigns, func(i, j int) bool {
		if campaigns[i].CreatedAt.Equal(campaigns[j].CreatedAt) {
			return campaigns[i].ID < campaigns[j].ID
		}
		return campaigns[i].CreatedAt.Before(campaigns[j].CreatedAt)
	})
}
