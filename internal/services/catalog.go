package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/pkg/apperrors"
	"github.com/mindbridge/assessment-backend/internal/repos"
	"github.com/mindbridge/assessment-backend/internal/types"
)

// CatalogService covers the descriptive config entities the engines and
// triggers read: recognition models, painting therapies, model configs and
// the knowledge base.
type CatalogService interface {
	CreateRecognition(ctx context.Context, cfg *types.EmotionRecognition) (*types.EmotionRecognition, error)
	ListRecognitions(ctx context.Context) ([]*types.EmotionRecognition, error)

	CreateTherapy(ctx context.Context, therapy *types.PaintingTherapy) (*types.PaintingTherapy, error)
	ListTherapies(ctx context.Context) ([]*types.PaintingTherapy, error)

	CreateModelConfig(ctx context.Context, cfg *types.ModelConfig) (*types.ModelConfig, error)
	ListModelConfigs(ctx context.Context) ([]*types.ModelConfig, error)

	CreateKnowledgeBase(ctx context.Context, kb *types.KnowledgeBase) (*types.KnowledgeBase, error)
	ListKnowledgeBases(ctx context.Context) ([]*types.KnowledgeBase, error)
	// AddKnowledgeDoc attaches a document and re-syncs the base's doc count.
	AddKnowledgeDoc(ctx context.Context, doc *types.KnowledgeDoc) (*types.KnowledgeDoc, error)
}

type catalogService struct {
	db           *gorm.DB
	log          *logger.Logger
	recognitions repos.EmotionRecognitionRepo
	therapies    repos.PaintingTherapyRepo
	modelConfigs repos.ModelConfigRepo
	kbs          repos.KnowledgeBaseRepo
	docs         repos.KnowledgeDocRepo
}

func NewCatalogService(db *gorm.DB, baseLog *logger.Logger, recognitions repos.EmotionRecognitionRepo, therapies repos.PaintingTherapyRepo, modelConfigs repos.ModelConfigRepo, kbs repos.KnowledgeBaseRepo, docs repos.KnowledgeDocRepo) CatalogService {
	return &catalogService{
		db:           db,
		log:          baseLog.With("service", "CatalogService"),
		recognitions: recognitions,
		therapies:    therapies,
		modelConfigs: modelConfigs,
		kbs:          kbs,
		docs:         docs,
	}
}

func (s *catalogService) CreateRecognition(ctx context.Context, cfg *types.EmotionRecognition) (*types.EmotionRecognition, error) {
	if cfg.ID == uuid.Nil {
		cfg.ID = uuid.New()
	}
	if cfg.RecogName == "" || cfg.APIEndpoint == "" {
		return nil, fmt.Errorf("%w: missing recog_name or api_endpoint", apperrors.ErrInvalidRequest)
	}
	created, err := s.recognitions.Create(ctx, nil, []*types.EmotionRecognition{cfg})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (s *catalogService) ListRecognitions(ctx context.Context) ([]*types.EmotionRecognition, error) {
	return s.recognitions.List(ctx, nil)
}

func (s *catalogService) CreateTherapy(ctx context.Context, therapy *types.PaintingTherapy) (*types.PaintingTherapy, error) {
	if therapy.ID == uuid.Nil {
		therapy.ID = uuid.New()
	}
	if therapy.TherapyName == "" || therapy.APIEndpoint == "" {
		return nil, fmt.Errorf("%w: missing therapy_name or api_endpoint", apperrors.ErrInvalidRequest)
	}
	created, err := s.therapies.Create(ctx, nil, []*types.PaintingTherapy{therapy})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (s *catalogService) ListTherapies(ctx context.Context) ([]*types.PaintingTherapy, error) {
	return s.therapies.List(ctx, nil)
}

func (s *catalogService) CreateModelConfig(ctx context.Context, cfg *types.ModelConfig) (*types.ModelConfig, error) {
	if cfg.ID == uuid.Nil {
		cfg.ID = uuid.New()
	}
	created, err := s.modelConfigs.Create(ctx, nil, []*types.ModelConfig{cfg})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (s *catalogService) ListModelConfigs(ctx context.Context) ([]*types.ModelConfig, error) {
	return s.modelConfigs.List(ctx, nil)
}

func (s *catalogService) CreateKnowledgeBase(ctx context.Context, kb *types.KnowledgeBase) (*types.KnowledgeBase, error) {
	if kb.ID == uuid.Nil {
		kb.ID = uuid.New()
	}
	if kb.KBName == "" {
		return nil, fmt.Errorf("%w: missing kb_name", apperrors.ErrInvalidRequest)
	}
	created, err := s.kbs.Create(ctx, nil, []*types.KnowledgeBase{kb})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (s *catalogService) ListKnowledgeBases(ctx context.Context) ([]*types.KnowledgeBase, error) {
	return s.kbs.List(ctx, nil)
}

func (s *catalogService) AddKnowledgeDoc(ctx context.Context, doc *types.KnowledgeDoc) (*types.KnowledgeDoc, error) {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if _, err := s.kbs.GetByID(ctx, nil, doc.KBID); err != nil {
		return nil, err
	}
	var created []*types.KnowledgeDoc
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = s.docs.Create(ctx, tx, []*types.KnowledgeDoc{doc})
		if err != nil {
			return err
		}
		_, err = s.kbs.SyncDocCount(ctx, tx, doc.KBID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}
