package postgres

import (
	"github.com/IgorMello0/auraia-hub/internal/auth"
	accountDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/account"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) auth.CredentialRepository {
	return &Repository{db: db}
}

func (r *Repository) GetProfessionalByEmail(email string) (*accountDatamodel.Professional, error) {
	var prof accountDatamodel.Professional
	err := r.db.Where("email = ?", email).First(&prof).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &prof, nil
}

func (r *Repository) GetEmployeeByEmail(email string) (*accountDatamodel.Employee, error) {
	var emp accountDatamodel.Employee
	err := r.db.Where("email = ?", email).First(&emp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}
