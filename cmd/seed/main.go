// Seeder: wipes listings and users and repopulates demo data.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/costasuite/backend/internal/config"
	"github.com/costasuite/backend/internal/credentials"
	"github.com/costasuite/backend/internal/database"
	"github.com/costasuite/backend/internal/logging"
	"github.com/costasuite/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	godotenv.Load()

	cfg := config.Load()
	logging.Setup(cfg.Env)

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if err := run(db); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seed completed",
		"admins", 1, "agents", 2, "rent_listings", 2, "sale_listings", 3)
}

func run(db *gorm.DB) error {
	if err := db.Where("1 = 1").Delete(&models.Property{}).Error; err != nil {
		return err
	}
	if err := db.Where("1 = 1").Delete(&models.User{}).Error; err != nil {
		return err
	}

	creds := credentials.New("", 0)
	adminHash, err := creds.HashPassword("admin123")
	if err != nil {
		return err
	}
	agentHash, err := creds.HashPassword("agent123")
	if err != nil {
		return err
	}

	admin := models.User{ID: uuid.New(), Email: "admin@costasuite.com", Password: adminHash, Name: "Admin CostaSuite", Role: models.RoleAdmin}
	agent1 := models.User{ID: uuid.New(), Email: "agent1@costasuite.com", Password: agentHash, Name: "Carlos Méndez", Role: models.RoleAgent}
	agent2 := models.User{ID: uuid.New(), Email: "agent2@costasuite.com", Password: agentHash, Name: "María González", Role: models.RoleAgent}

	for _, u := range []*models.User{&admin, &agent1, &agent2} {
		if err := db.Create(u).Error; err != nil {
			return err
		}
	}
	slog.Info("users created")

	intp := func(v int) *int { return &v }

	listings := []models.Property{
		{
			Title:       "Departamento Moderno con Vista al Mar",
			Description: "Hermoso departamento completamente amueblado con vista panorámica a la bahía de Acapulco. Ubicado en la zona dorada, cerca de restaurantes y vida nocturna. Ideal para estadías largas o vacaciones.",
			Type:        models.TypeRent,
			Price:       15000,
			Location: models.Location{
				Address: "Av. Costera Miguel Alemán 121", City: "Acapulco", State: "Guerrero",
				Country: "México", PostalCode: "39670",
				Coordinates: models.Coordinates{Lat: 16.8531, Lng: -99.8237},
			},
			Features: models.Features{Bedrooms: 2, Bathrooms: 2, Area: 85, ParkingSpots: intp(1), YearBuilt: intp(2018)},
			Images: datatypes.NewJSONSlice([]string{
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688",
				"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267",
				"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2",
			}),
			Amenities: datatypes.NewJSONSlice([]string{"Aire acondicionado", "WiFi", "Piscina", "Gimnasio", "Seguridad 24/7", "Balcón", "Vista al mar"}),
			OwnerID:   agent1.ID,
		},
		{
			Title:       "Casa Vacacional en Barra Vieja",
			Description: "Acogedora casa de playa perfecta para familias. A solo 50 metros de la playa de Barra Vieja. Cuenta con amplio jardín y parrilla. Ambiente tranquilo y relajado lejos del bullicio de la ciudad.",
			Type:        models.TypeRent,
			Price:       8000,
			Location: models.Location{
				Address: "Calle Playa Barra Vieja s/n", City: "Acapulco", State: "Guerrero",
				Country: "México", PostalCode: "39931",
				Coordinates: models.Coordinates{Lat: 16.7842, Lng: -99.6952},
			},
			Features: models.Features{Bedrooms: 3, Bathrooms: 2, Area: 120, ParkingSpots: intp(2), YearBuilt: intp(2015)},
			Images: datatypes.NewJSONSlice([]string{
				"https://images.unsplash.com/photo-1564013799919-ab600027ffc6",
				"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9",
				"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c",
			}),
			Amenities: datatypes.NewJSONSlice([]string{"Jardín", "Parrilla", "WiFi", "Cocina equipada", "Cerca de la playa", "Estacionamiento"}),
			OwnerID:   agent2.ID,
		},
		{
			Title:       "Residencia de Lujo en Las Brisas",
			Description: "Espectacular residencia en la exclusiva zona de Las Brisas con vistas impresionantes a la bahía. Cuenta con diseño contemporáneo, acabados de primera calidad y espacios amplios. Incluye alberca infinity y jacuzzi.",
			Type:        models.TypeSale,
			Price:       12500000,
			Location: models.Location{
				Address: "Carretera Escénica Las Brisas 245", City: "Acapulco", State: "Guerrero",
				Country: "México", PostalCode: "39868",
				Coordinates: models.Coordinates{Lat: 16.8311, Lng: -99.8947},
			},
			Features: models.Features{Bedrooms: 5, Bathrooms: 6, Area: 450, ParkingSpots: intp(4), YearBuilt: intp(2020)},
			Images: datatypes.NewJSONSlice([]string{
				"https://images.unsplash.com/photo-1613490493576-7fde63acd811",
				"https://images.unsplash.com/photo-1600607687920-4e2a09cf159d",
				"https://images.unsplash.com/photo-1600585154340-be6161a56a0c",
			}),
			Amenities: datatypes.NewJSONSlice([]string{"Alberca infinity", "Jacuzzi", "Gimnasio privado", "Cava de vinos", "Terraza con vista", "Smart home", "Seguridad 24/7", "Jardín", "Estudio"}),
			OwnerID:   agent1.ID,
		},
		{
			Title:       "Condominio Frente al Mar - Zona Diamante",
			Description: "Elegante condominio en el corazón de la Zona Diamante. Construcción reciente con todas las amenidades modernas. Perfecto para inversión o residencia principal. Acceso directo a playa privada.",
			Type:        models.TypeSale,
			Price:       6800000,
			Location: models.Location{
				Address: "Blvd. de las Naciones 1200", City: "Acapulco", State: "Guerrero",
				Country: "México", PostalCode: "39906",
				Coordinates: models.Coordinates{Lat: 16.7947, Lng: -99.7522},
			},
			Features: models.Features{Bedrooms: 3, Bathrooms: 3, Area: 180, ParkingSpots: intp(2), YearBuilt: intp(2021)},
			Images: datatypes.NewJSONSlice([]string{
				"https://images.unsplash.com/photo-1512917774080-9991f1c4c750",
				"https://images.unsplash.com/photo-1600047509807-ba8f99d2cdde",
				"https://images.unsplash.com/photo-1600566753086-00f18fb6b3ea",
			}),
			Amenities: datatypes.NewJSONSlice([]string{"Playa privada", "Piscina", "Cancha de tenis", "Gimnasio", "Spa", "Restaurante", "Seguridad 24/7", "Balcón amplio", "Vista al mar"}),
			OwnerID:   agent2.ID,
		},
		{
			Title:       "Casa Colonial en Centro Histórico",
			Description: "Encantadora casa colonial restaurada en el centro de Acapulco Tradicional. Arquitectura original conservada con modernizaciones inteligentes. Ideal para hotel boutique o residencia con historia.",
			Type:        models.TypeSale,
			Price:       4200000,
			Location: models.Location{
				Address: "Calle Benito Juárez 89, Centro", City: "Acapulco", State: "Guerrero",
				Country: "México", PostalCode: "39300",
				Coordinates: models.Coordinates{Lat: 16.8631, Lng: -99.8825},
			},
			Features: models.Features{Bedrooms: 4, Bathrooms: 3, Area: 320, ParkingSpots: intp(2), YearBuilt: intp(1950)},
			Images: datatypes.NewJSONSlice([]string{
				"https://images.unsplash.com/photo-1580587771525-78b9dba3b914",
				"https://images.unsplash.com/photo-1600585154526-990dced4db0d",
				"https://images.unsplash.com/photo-1600573472592-401b489a3cdc",
			}),
			Amenities: datatypes.NewJSONSlice([]string{"Arquitectura colonial", "Patio central", "Fuente", "Cocina tradicional", "Techos altos", "Pisos de barro", "Balcones", "Cerca del Zócalo"}),
			OwnerID:   agent1.ID,
		},
	}

	for i := range listings {
		listings[i].ID = uuid.New()
		listings[i].Status = models.StatusAvailable
		if err := db.Create(&listings[i]).Error; err != nil {
			return err
		}
	}
	slog.Info("listings created", "count", len(listings))

	return nil
}
