package services_test

import (
	"log/slog"
	"testing"
	"time"

	"transfers-api/internal/dto"
	"transfers-api/internal/models"
	"transfers-api/internal/repositories"
	"transfers-api/internal/services"
	"transfers-api/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type CompanyServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	ctrl    *gomock.Controller
	metrics *service_mocks.MockMetricsRecorderInterface
	service services.CompanyServiceInterface
}

func TestCompanyServiceSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}

func (s *CompanyServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)
	require.NoError(s.T(), db.AutoMigrate(&models.Company{}, &models.Transfer{}))

	s.db = db
	s.ctrl = gomock.NewController(s.T())
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	s.service = services.NewCompanyService(
		db,
		repositories.NewCompanyRepository(db),
		s.metrics,
		slog.Default(),
	)
}

func (s *CompanyServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func (s *CompanyServiceTestSuite) TestCreateCompany_Success() {
	company, err := s.service.CreateCompany(&dto.CreateCompanyRequest{
		Cuit:         "30716595540",
		BusinessName: "Acme SA",
	})

	require.NoError(s.T(), err)
	assert.NotZero(s.T(), company.ID)
	assert.Equal(s.T(), "30-71659554-0", company.Cuit)
	assert.True(s.T(), company.IsActive)
	assert.False(s.T(), company.AdhesionDate.IsZero())
}

func (s *CompanyServiceTestSuite) TestCreateCompany_InvalidCuit() {
	_, err := s.service.CreateCompany(&dto.CreateCompanyRequest{
		Cuit:         "30-71659554-9",
		BusinessName: "Acme SA",
	})

	assert.ErrorIs(s.T(), err, services.ErrInvalidCuit)

	var count int64
	require.NoError(s.T(), s.db.Model(&models.Company{}).Count(&count).Error)
	assert.Zero(s.T(), count)
}

func (s *CompanyServiceTestSuite) TestCreateCompany_DuplicateCuit() {
	_, err := s.service.CreateCompany(&dto.CreateCompanyRequest{
		Cuit:         "30-71659554-0",
		BusinessName: "Acme SA",
	})
	require.NoError(s.T(), err)

	// Same CUIT without dashes must still be rejected
	_, err = s.service.CreateCompany(&dto.CreateCompanyRequest{
		Cuit:         "30716595540",
		BusinessName: "Other SA",
	})
	assert.ErrorIs(s.T(), err, services.ErrCompanyCuitExists)

	// The rejected registration must not leave a second row behind
	var count int64
	require.NoError(s.T(), s.db.Model(&models.Company{}).Count(&count).Error)
	assert.Equal(s.T(), int64(1), count)
}

func (s *CompanyServiceTestSuite) TestCreateCompany_SanitizesBusinessName() {
	company, err := s.service.CreateCompany(&dto.CreateCompanyRequest{
		Cuit:         "30-71659554-0",
		BusinessName: "  Acme <SA>  ",
	})

	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Acme &lt;SA&gt;", company.BusinessName)
}

func (s *CompanyServiceTestSuite) TestCreateCompany_OptionalContactFields() {
	address := gofakeit.Street()
	email := gofakeit.Email()
	phone := "+54 11 4321-5678"

	company, err := s.service.CreateCompany(&dto.CreateCompanyRequest{
		Cuit:         "30-71659554-0",
		BusinessName: gofakeit.Company(),
		Address:      &address,
		ContactEmail: &email,
		ContactPhone: &phone,
	})

	require.NoError(s.T(), err)
	require.NotNil(s.T(), company.Address)
	assert.Equal(s.T(), address, *company.Address)
	require.NotNil(s.T(), company.ContactEmail)
	assert.Equal(s.T(), email, *company.ContactEmail)
	require.NotNil(s.T(), company.ContactPhone)
	assert.Equal(s.T(), phone, *company.ContactPhone)
}

func (s *CompanyServiceTestSuite) TestCreateCompany_ExplicitAdhesionDate() {
	adhesion := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	company, err := s.service.CreateCompany(&dto.CreateCompanyRequest{
		Cuit:         "30-71659554-0",
		BusinessName: "Acme SA",
		AdhesionDate: &adhesion,
	})

	require.NoError(s.T(), err)
	assert.True(s.T(), company.AdhesionDate.Equal(adhesion))
}

func (s *CompanyServiceTestSuite) TestGetCompanies_Pagination() {
	for _, c := range []struct{ cuit, name string }{
		{"30-71659554-0", "Acme SA"},
		{"20-12345678-6", "Beta SRL"},
		{"23-12345678-5", "Gamma SA"},
	} {
		_, err := s.service.CreateCompany(&dto.CreateCompanyRequest{Cuit: c.cuit, BusinessName: c.name})
		require.NoError(s.T(), err)
	}

	companies, total, err := s.service.GetCompanies(models.CompanyFilters{}, 1, 2)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(3), total)
	assert.Len(s.T(), companies, 2)

	companies, _, err = s.service.GetCompanies(models.CompanyFilters{}, 2, 2)
	require.NoError(s.T(), err)
	assert.Len(s.T(), companies, 1)
}

func (s *CompanyServiceTestSuite) TestGetCompanyByRef() {
	created, err := s.service.CreateCompany(&dto.CreateCompanyRequest{
		Cuit:         "30-71659554-0",
		BusinessName: "Acme SA",
	})
	require.NoError(s.T(), err)

	byID, err := s.service.GetCompanyByRef(repositories.NewIDRef(created.ID))
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.UUID, byID.UUID)

	byUUID, err := s.service.GetCompanyByRef(repositories.NewUUIDRef(created.UUID))
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.ID, byUUID.ID)
}

func (s *CompanyServiceTestSuite) TestGetCompanyByRef_NotFound() {
	_, err := s.service.GetCompanyByRef(repositories.NewIDRef(9999))
	assert.ErrorIs(s.T(), err, services.ErrCompanyNotFound)
}

func (s *CompanyServiceTestSuite) TestDeleteCompany() {
	created, err := s.service.CreateCompany(&dto.CreateCompanyRequest{
		Cuit:         "30-71659554-0",
		BusinessName: "Acme SA",
	})
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.service.DeleteCompany(repositories.NewIDRef(created.ID)))

	_, err = s.service.GetCompanyByRef(repositories.NewIDRef(created.ID))
	assert.ErrorIs(s.T(), err, services.ErrCompanyNotFound)
}

func (s *CompanyServiceTestSuite) TestDeleteCompany_NotFound() {
	err := s.service.DeleteCompany(repositories.NewIDRef(9999))
	assert.ErrorIs(s.T(), err, services.ErrCompanyNotFound)
}

func (s *CompanyServiceTestSuite) TestGetCompaniesAdheringLastMonth() {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	inWindow := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	_, err := s.service.CreateCompany(&dto.CreateCompanyRequest{
		Cuit:         "30-71659554-0",
		BusinessName: "February SA",
		AdhesionDate: &inWindow,
	})
	require.NoError(s.T(), err)

	outOfWindow := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	_, err = s.service.CreateCompany(&dto.CreateCompanyRequest{
		Cuit:         "20-12345678-6",
		BusinessName: "March SA",
		AdhesionDate: &outOfWindow,
	})
	require.NoError(s.T(), err)

	companies, total, err := s.service.GetCompaniesAdheringLastMonth(now, 1, 10)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), total)
	require.Len(s.T(), companies, 1)
	assert.Equal(s.T(), "February SA", companies[0].BusinessName)
}

func (s *CompanyServiceTestSuite) TestGetCompaniesAdheringLastMonth_Empty() {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	_, _, err := s.service.GetCompaniesAdheringLastMonth(now, 1, 10)
	assert.ErrorIs(s.T(), err, services.ErrNoReportResults)
}
