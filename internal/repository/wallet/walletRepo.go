package walletRepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
)

// Mutating methods take the gorm handle explicitly so the gift usecase can run
// ensure+debit+credit+record inside one transaction.
type IWalletRepo interface {
	// EnsureWallet lazily creates the user's wallet with the default starting
	// balance. Insert-if-absent, so two concurrent first-time operations for
	// the same user cannot create duplicate wallets.
	EnsureWallet(ctx context.Context, tx *gorm.DB, userID uint) error

	// GetWallet ensures the wallet exists, then reads it.
	GetWallet(ctx context.Context, userID uint) (*entity.Wallet, error)

	// DebitIfSufficient performs the conditional atomic debit. Returns false
	// without mutating anything when the balance is below cost.
	DebitIfSufficient(ctx context.Context, tx *gorm.DB, userID uint, cost int64) (bool, error)

	// CreditEarned grows the receiver's lifetime-earned counter. Balance is
	// untouched: gifting never spends directly into balance.
	CreditEarned(ctx context.Context, tx *gorm.DB, userID uint, amount int64) error

	GetBalance(ctx context.Context, tx *gorm.DB, userID uint) (int64, error)
}

type WalletRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IWalletRepo {
	return &WalletRepo{
		db: db,
	}
}

func (r *WalletRepo) EnsureWallet(ctx context.Context, tx *gorm.DB, userID uint) error {
	wallet := entity.Wallet{
		UserID:  userID,
		Balance: entity.DefaultWalletBalance,
	}

	return tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&wallet).Error
}

func (r *WalletRepo) GetWallet(ctx context.Context, userID uint) (*entity.Wallet, error) {
	if err := r.EnsureWallet(ctx, r.db, userID); err != nil {
		return nil, err
	}

	var wallet entity.Wallet
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&wallet)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	return &wallet, res.Error
}

func (r *WalletRepo) DebitIfSufficient(ctx context.Context, tx *gorm.DB, userID uint, cost int64) (bool, error) {
	res := tx.WithContext(ctx).
		Model(&entity.Wallet{}).
		Where("user_id = ? AND balance >= ?", userID, cost).
		UpdateColumn("balance", gorm.Expr("balance - ?", cost))

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected == 1, nil
}

func (r *WalletRepo) CreditEarned(ctx context.Context, tx *gorm.DB, userID uint, amount int64) error {
	res := tx.WithContext(ctx).
		Model(&entity.Wallet{}).
		Where("user_id = ?", userID).
		UpdateColumn("total_earned", gorm.Expr("total_earned + ?", amount))

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *WalletRepo) GetBalance(ctx context.Context, tx *gorm.DB, userID uint) (int64, error) {
	var wallet entity.Wallet
	res := tx.WithContext(ctx).Where("user_id = ?", userID).First(&wallet)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return 0, entity.ErrNotFound
	}
	return wallet.Balance, res.Error
}
