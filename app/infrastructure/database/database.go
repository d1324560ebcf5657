package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	"gorm.io/plugin/dbresolver"
	"shopstack.io/product-catalog/app/utils/logger"
	"shopstack.io/product-catalog/config/environment_variables"
)

var SchemaRegistry []interface{}

func RegisterSchemaForAutoMigrate(models ...interface{}) {
	SchemaRegistry = append(SchemaRegistry, models...)
}

var DB *gorm.DB

func NewDB() (*gorm.DB, error) {
	writeDSN := environment_variables.EnvironmentVariables.DB_POSTGRESQL_WRITE_DSN
	if writeDSN == "" {
		return nil, fmt.Errorf("DB_POSTGRESQL_WRITE_DSN is not configured")
	}

	db, err := gorm.Open(postgres.Open(writeDSN), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		logger.GetLogger().
			WithField("error_code", "2b1df9c4-91c2-4eab-b53a-73f0dd55321f").
			Errorf("unable to connect to database: %v", err)
		return nil, err
	}

	if readDSN := environment_variables.EnvironmentVariables.DB_POSTGRESQL_READ1_DSN; readDSN != "" {
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(readDSN)},
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			logger.GetLogger().
				WithField("error_code", "a7e49c31-0b2e-4f6f-9c39-4f2f7f9be0d4").
				Errorf("unable to set up read replica: %v", err)
			return nil, err
		}
	}

	for _, model := range SchemaRegistry {
		if err := db.AutoMigrate(model); err != nil {
			logger.GetLogger().
				WithField("error_code", "cf94f1fd-0f8f-4a9b-b9a2-62bb8f0f6f55").
				Errorf("failed to auto migrate schema: %T, error: %v", model, err)
			return nil, err
		}
	}

	DB = db
	return DB, nil
}
