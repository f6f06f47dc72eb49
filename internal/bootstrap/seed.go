package bootstrap

import (
	"context"
	"errors"
	"os"

	"go-hrms/internal/admin"
	"go-hrms/internal/domain"
	"go-hrms/internal/organization"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	defaultSeedOrgName = "Default Organization"
	defaultSeedOrgCode = "DEFAULT"
)

// SeedSuperAdmin creates the initial SUPER_ADMIN account from
// BOOTSTRAP_ADMIN_EMAIL / BOOTSTRAP_ADMIN_PASSWORD. It is a no-op when
// the env vars are unset or an admin with that email already exists, so
// it is safe to run on every startup. The organization, its settings
// row and the admin are created in one transaction.
func SeedSuperAdmin(ctx context.Context, db *gorm.DB, auditLogger AuditLogger) error {
	logger := zap.L().Named("bootstrap.seed")

	email := os.Getenv("BOOTSTRAP_ADMIN_EMAIL")
	password := os.Getenv("BOOTSTRAP_ADMIN_PASSWORD")
	if email == "" || password == "" {
		logger.Info("bootstrap admin not configured, skipping seed")
		return nil
	}

	adminRepo := admin.NewRepository(db)
	if _, err := adminRepo.FindByEmail(ctx, email); err == nil {
		logger.Info("bootstrap admin already present", zap.String("email", email))
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	orgName := os.Getenv("BOOTSTRAP_ORG_NAME")
	if orgName == "" {
		orgName = defaultSeedOrgName
	}
	orgCode := os.Getenv("BOOTSTRAP_ORG_CODE")
	if orgCode == "" {
		orgCode = defaultSeedOrgCode
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	orgRepo := organization.NewRepository(db).WithTx(tx)
	org := &organization.Organization{
		Name:     orgName,
		Code:     orgCode,
		IsActive: true,
	}
	if err := orgRepo.Create(ctx, org); err != nil {
		return err
	}
	if err := orgRepo.CreateSettings(ctx, &organization.Settings{
		OrganizationID: org.ID,
		Timezone:       "UTC",
		WorkWeekStart:  "MONDAY",
	}); err != nil {
		return err
	}

	account := &admin.Admin{
		Email:          email,
		Password:       string(hash),
		Name:           "Super Admin",
		Role:           domain.RoleSuperAdmin.String(),
		IsActive:       true,
		OrganizationID: org.ID,
	}
	if err := adminRepo.WithTx(tx).Create(ctx, account); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	auditLogger.Log(ctx, AuditLog{
		Action:  "BOOTSTRAP_ADMIN_SEEDED",
		Message: "Initial super admin account created",
		Meta: map[string]any{
			"email":           email,
			"organization_id": org.ID.String(),
		},
	})
	logger.Info("bootstrap admin seeded", zap.String("email", email))

	return nil
}
