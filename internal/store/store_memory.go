package store

import (
	"fmt"
	"time"

	"github.com/campaignai/campaign-planner-go/internal/domain/campaign"
)

// addMemory 메모리 백엔드 캠페인 생성
func (s *Store) addMemory(c campaign.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.campaigns[c.ID]; ok {
		return fmt.Errorf("%w: %s", ErrCampaignExists, c.ID)
	}
	s.campaigns[c.ID] = c.Clone()
	return nil
}

// getMemory 메모리 백엔드 캠페인 조회
func (s *Store) getMemory(id string) (*campaign.Campaign, error) {
	s.mu.RLock()
	stored, ok := s.campaigns[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCampaignNotFound, id)
	}
	copied := stored.Clone()
	return &copied, nil
}

// updateMemory 메모리 백엔드 캠페인 업데이트
func (s *Store) updateMemory(c campaign.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.campaigns[c.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCampaignNotFound, c.ID)
	}
	if err := checkStatus(&existing, &c); err != nil {
		return err
	}

	c.UpdatedAt = time.Now()
	s.campaigns[c.ID] = c.Clone()
	return nil
}

// putMemory 메모리 백엔드 저장 (상태 검사 없이 덮어쓰기)
func (s *Store) putMemory(c campaign.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.campaigns[c.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrCampaignNotFound, c.ID)
	}
	s.campaigns[c.ID] = c.Clone()
	return nil
}

// listMemory 메모리 백엔드 캠페인 목록
func (s *Store) listMemory() []campaign.Campaign {
	s.mu.RLock()
	campaigns := make([]campaign.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		campaigns = append(campaigns, c.Clone())
	}
	s.mu.RUnlock()

	sortCampaigns(campaigns)
	return campaigns
}
