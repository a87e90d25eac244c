package service

import (
	"errors"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/GhufranBkri/Sipema-backend/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	NoIdentitas   string `json:"no_identitas"`
	NoTelphone    string `json:"no_telphone"`
	ProgramStudi  string `json:"program_studi"`
	UserLevelName string `json:"userLevelName"`
}

type LoginRequest struct {
	NoIdentitas string `json:"no_identitas"`
	Password    string `json:"password"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type AuthService struct {
	userRepo  repository.UserRepository
	levelRepo repository.UserLevelRepository
}

func NewAuthService(userRepo repository.UserRepository, levelRepo repository.UserLevelRepository) *AuthService {
	return &AuthService{userRepo: userRepo, levelRepo: levelRepo}
}

func (s *AuthService) Register(req RegisterRequest) (*model.User, error) {
	fields := make([]FieldError, 0)
	if req.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "cannot be empty"})
	}
	if req.Email == "" {
		fields = append(fields, FieldError{Field: "email", Message: "cannot be empty"})
	}
	if req.Password == "" {
		fields = append(fields, FieldError{Field: "password", Message: "cannot be empty"})
	}
	if req.NoIdentitas == "" {
		fields = append(fields, FieldError{Field: "no_identitas", Message: "cannot be empty"})
	}
	if req.UserLevelName == "" {
		fields = append(fields, FieldError{Field: "userLevelName", Message: "cannot be empty"})
	}
	if len(fields) > 0 {
		return nil, ValidationError(fields...)
	}

	if _, err := s.userRepo.FindByNoIdentitas(req.NoIdentitas); err == nil {
		return nil, Conflict("User with this no_identitas already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Error("AuthService.Register: lookup no_identitas")
		return nil, Internal()
	}
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, Conflict("User with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Error("AuthService.Register: lookup email")
		return nil, Internal()
	}

	level, err := s.levelRepo.FindByName(req.UserLevelName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ValidationError(FieldError{Field: "userLevelName", Message: "user level not found"})
		}
		logrus.WithError(err).Error("AuthService.Register: lookup level")
		return nil, Internal()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("AuthService.Register: hash password")
		return nil, Internal()
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     string(hashed),
		NoIdentitas:  req.NoIdentitas,
		NoTelphone:   req.NoTelphone,
		ProgramStudi: req.ProgramStudi,
		UserLevelID:  level.ID,
		UserLevel:    level,
	}
	if err := s.userRepo.Create(user); err != nil {
		logrus.WithError(err).Error("AuthService.Register")
		return nil, Internal()
	}
	return user, nil
}

func (s *AuthService) Login(req LoginRequest) (*LoginResponse, error) {
	if req.NoIdentitas == "" || req.Password == "" {
		return nil, ValidationError(
			FieldError{Field: "no_identitas", Message: "cannot be empty"},
			FieldError{Field: "password", Message: "cannot be empty"},
		)
	}

	user, err := s.userRepo.FindByNoIdentitas(req.NoIdentitas)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Unauthorized("no_identitas atau password salah")
		}
		logrus.WithError(err).Error("AuthService.Login: lookup user")
		return nil, Internal()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, Unauthorized("no_identitas atau password salah")
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		logrus.WithError(err).Error("AuthService.Login: sign token")
		return nil, Internal()
	}

	return &LoginResponse{Token: token, User: *user}, nil
}
