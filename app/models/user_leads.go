package models

import "gorm.io/gorm"

// UserLeads stores the per-user bonus leads pool, independent of any
// subscription. It is consumed only when no active, non-expired subscription
// exists. Invariant: BonusLeadsUsed <= BonusLeads.
type UserLeads struct {
	ID             uint  `gorm:"primaryKey" json:"id"`
	UserID         uint  `gorm:"uniqueIndex" json:"user_id"`
	BonusLeads     int64 `gorm:"not null;default:0" json:"bonus_leads"`
	BonusLeadsUsed int64 `gorm:"not null;default:0" json:"bonus_leads_used"`
}

// GetOrCreateUserLeads returns the existing pool or creates an empty one.
func GetOrCreateUserLeads(db *gorm.DB, userID uint) (*UserLeads, error) {
	var ul UserLeads
	if err := db.Where("user_id = ?", userID).First(&ul).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			ul = UserLeads{UserID: userID}
			if err := db.Create(&ul).Error; err != nil {
				return nil, err
			}
			return &ul, nil
		}
		return nil, err
	}
	return &ul, nil
}

// Available returns the remaining bonus leads, never negative.
func (ul *UserLeads) Available() int64 {
	if ul == nil {
		return 0
	}
	if ul.BonusLeadsUsed >= ul.BonusLeads {
		return 0
	}
	return ul.BonusLeads - ul.BonusLeadsUsed
}

// Consume marks one bonus lead as used. Returns false when the pool is empty.
func (ul *UserLeads) Consume() bool {
	if ul.Available() <= 0 {
		return false
	}
	ul.BonusLeadsUsed++
	return true
}
