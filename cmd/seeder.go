package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with the module catalog and sample accounts for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			fmt.Println("Clearing existing data...")
			for _, table := range []string{
				"messages", "conversations", "payments", "appointments",
				"employee_permissions", "professional_permissions",
				"form_templates", "catalog_items", "clients", "employees", "professionals",
			} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
		}

		seedModules(db)

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		profEmail := "igor@auraia.com"
		var profID int64
		row := db.Raw("SELECT id FROM professionals WHERE email = ?", profEmail).Row()
		if err := row.Scan(&profID); err != nil {
			if err := db.Exec(
				"INSERT INTO professionals (name, email, password_hash, phone, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, true, now(), now())",
				"Igor Mello", profEmail, string(hash), "+55 11 99999-0001").Error; err != nil {
				log.Fatalf("failed to insert professional: %v", err)
			}
			if err := db.Raw("SELECT id FROM professionals WHERE email = ?", profEmail).Row().Scan(&profID); err != nil {
				log.Fatalf("failed to read professional id: %v", err)
			}
			fmt.Println("Seeded professional:", profEmail)
		} else {
			fmt.Println("professional already exists:", profEmail)
		}

		seedEmployee(db, profID, "Ana Admin", "ana@auraia.com", string(hash), "admin")
		atendenteID := seedEmployee(db, profID, "Bruno Atendente", "bruno@auraia.com", string(hash), "atendente")

		// Sample grants both ways so the decision engine is exercised.
		grantEmployee(db, atendenteID, "agendamentos", true)
		grantEmployee(db, atendenteID, "conversas", true)
		grantEmployee(db, atendenteID, "pagamentos", false)
		grantProfessional(db, profID, "formularios", false)

		fmt.Println("Seeding complete. Login password for all sample accounts:", password)
	},
}

func seedModules(db *gorm.DB) {
	modules := []struct {
		Code string
		Name string
	}{
		{"agendamentos", "Agendamentos"},
		{"clientes", "Clientes"},
		{"servicos", "Serviços"},
		{"pagamentos", "Pagamentos"},
		{"conversas", "Conversas"},
		{"formularios", "Formulários"},
		{"equipe", "Equipe"},
	}

	for _, m := range modules {
		var exists int
		if err := db.Raw("SELECT 1 FROM modules WHERE code = ?", m.Code).Row().Scan(&exists); err == nil {
			continue
		}
		if err := db.Exec(
			"INSERT INTO modules (code, name, is_active, created_at, updated_at) VALUES (?, ?, true, now(), now())",
			m.Code, m.Name).Error; err != nil {
			log.Fatalf("failed to insert module %s: %v", m.Code, err)
		}
		fmt.Println("Seeded module:", m.Code)
	}
}

func seedEmployee(db *gorm.DB, professionalID int64, name, email, hash, role string) int64 {
	var id int64
	if err := db.Raw("SELECT id FROM employees WHERE email = ?", email).Row().Scan(&id); err == nil {
		fmt.Println("employee already exists:", email)
		return id
	}

	if err := db.Exec(
		"INSERT INTO employees (professional_id, name, email, password_hash, role, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, true, now(), now())",
		professionalID, name, email, hash, role).Error; err != nil {
		log.Fatalf("failed to insert employee %s: %v", email, err)
	}
	if err := db.Raw("SELECT id FROM employees WHERE email = ?", email).Row().Scan(&id); err != nil {
		log.Fatalf("failed to read employee id: %v", err)
	}
	fmt.Println("Seeded employee:", email, "role:", role)
	return id
}

func grantEmployee(db *gorm.DB, employeeID int64, moduleCode string, hasAccess bool) {
	var moduleID int64
	if err := db.Raw("SELECT id FROM modules WHERE code = ?", moduleCode).Row().Scan(&moduleID); err != nil {
		log.Fatalf("module %s not seeded: %v", moduleCode, err)
	}
	if err := db.Exec(
		`INSERT INTO employee_permissions (employee_id, module_id, has_access, created_at, updated_at)
		 VALUES (?, ?, ?, now(), now())
		 ON CONFLICT (employee_id, module_id) DO UPDATE SET has_access = EXCLUDED.has_access, updated_at = now()`,
		employeeID, moduleID, hasAccess).Error; err != nil {
		log.Fatalf("failed to grant %s to employee %d: %v", moduleCode, employeeID, err)
	}
}

func grantProfessional(db *gorm.DB, professionalID int64, moduleCode string, hasAccess bool) {
	var moduleID int64
	if err := db.Raw("SELECT id FROM modules WHERE code = ?", moduleCode).Row().Scan(&moduleID); err != nil {
		log.Fatalf("module %s not seeded: %v", moduleCode, err)
	}
	if err := db.Exec(
		`INSERT INTO professional_permissions (professional_id, module_id, has_access, created_at, updated_at)
		 VALUES (?, ?, ?, now(), now())
		 ON CONFLICT (professional_id, module_id) DO UPDATE SET has_access = EXCLUDED.has_access, updated_at = now()`,
		professionalID, moduleID, hasAccess).Error; err != nil {
		log.Fatalf("failed to grant %s to professional %d: %v", moduleCode, professionalID, err)
	}
}
