package contrato

import (
	"context"

	"gorm.io/gorm"
)

// Repositorio cobre o contrato em si, as coleções relacionadas carregadas no
// fan-out e os anexos gravados após a criação.
type Repositorio interface {
	Criar(ctx context.Context, c *Contrato) error
	Atualizar(ctx context.Context, c *Contrato) error
	BuscarPorID(ctx context.Context, id uint) (*Contrato, error)
	ListarTodos(ctx context.Context) ([]Contrato, error)
	Deletar(ctx context.Context, id uint) error

	BuscarLocadores(ctx context.Context, contratoID uint) ([]ContratoLocador, error)
	BuscarLocatarios(ctx context.Context, contratoID uint) ([]ContratoLocatario, error)
	BuscarPets(ctx context.Context, contratoID uint) ([]Pet, error)
	BuscarGarantias(ctx context.Context, contratoID uint) ([]Garantia, error)
	BuscarPlano(ctx context.Context, contratoID uint) (*Plano, error)
	BuscarDadosBancariosCorretor(ctx context.Context, contratoID uint) (*DadosBancariosCorretor, error)

	AnexarLocadores(ctx context.Context, contratoID uint, linhas []ContratoLocador) error
	AnexarLocatarios(ctx context.Context, contratoID uint, vinculos []ContratoLocatario) error
	AnexarGarantia(ctx context.Context, contratoID uint, g *Garantia) error
	AnexarPets(ctx context.Context, contratoID uint, pets []Pet) error
}

type repositorioImpl struct {
	DB *gorm.DB
}

func NovoRepositorio(db *gorm.DB) Repositorio {
	return &repositorioImpl{DB: db}
}

// Criar grava apenas o registro do contrato; locadores, locatários, garantia
// e pets entram pelas etapas de anexo.
func (r *repositorioImpl) Criar(ctx context.Context, c *Contrato) error {
	return r.DB.WithContext(ctx).
		Omit("Locadores", "Locatarios", "Pets", "Garantia").
		Create(c).Error
}

func (r *repositorioImpl) Atualizar(ctx context.Context, c *Contrato) error {
	return r.DB.WithContext(ctx).
		Omit("Locadores", "Locatarios", "Pets", "Garantia").
		Save(c).Error
}

func (r *repositorioImpl) BuscarPorID(ctx context.Context, id uint) (*Contrato, error) {
	var c Contrato
	if err := r.DB.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositorioImpl) ListarTodos(ctx context.Context) ([]Contrato, error) {
	var contratos []Contrato
	err := r.DB.WithContext(ctx).Find(&contratos).Error
	return contratos, err
}

func (r *repositorioImpl) Deletar(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&Contrato{}, id).Error
}

func (r *repositorioImpl) BuscarLocadores(ctx context.Context, contratoID uint) ([]ContratoLocador, error) {
	var linhas []ContratoLocador
	err := r.DB.WithContext(ctx).Where("contrato_id = ?", contratoID).Find(&linhas).Error
	return linhas, err
}

func (r *repositorioImpl) BuscarLocatarios(ctx context.Context, contratoID uint) ([]ContratoLocatario, error) {
	var vinculos []ContratoLocatario
	err := r.DB.WithContext(ctx).Where("contrato_id = ?", contratoID).Find(&vinculos).Error
	return vinculos, err
}

func (r *repositorioImpl) BuscarPets(ctx context.Context, contratoID uint) ([]Pet, error) {
	var pets []Pet
	err := r.DB.WithContext(ctx).Where("contrato_id = ?", contratoID).Find(&pets).Error
	return pets, err
}

func (r *repositorioImpl) BuscarGarantias(ctx context.Context, contratoID uint) ([]Garantia, error) {
	var garantias []Garantia
	err := r.DB.WithContext(ctx).Where("contrato_id = ?", contratoID).Find(&garantias).Error
	return garantias, err
}

func (r *repositorioImpl) BuscarPlano(ctx context.Context, contratoID uint) (*Plano, error) {
	var p Plano
	if err := r.DB.WithContext(ctx).Where("contrato_id = ?", contratoID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositorioImpl) BuscarDadosBancariosCorretor(ctx context.Context, contratoID uint) (*DadosBancariosCorretor, error) {
	var d DadosBancariosCorretor
	if err := r.DB.WithContext(ctx).Where("contrato_id = ?", contratoID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// AnexarLocadores substitui o rateio persistido pelo rateio atual.
func (r *repositorioImpl) AnexarLocadores(ctx context.Context, contratoID uint, linhas []ContratoLocador) error {
	tx := r.DB.WithContext(ctx)
	if err := tx.Where("contrato_id = ?", contratoID).Delete(&ContratoLocador{}).Error; err != nil {
		return err
	}
	if len(linhas) == 0 {
		return nil
	}
	return tx.Create(&linhas).Error
}

func (r *repositorioImpl) AnexarLocatarios(ctx context.Context, contratoID uint, vinculos []ContratoLocatario) error {
	tx := r.DB.WithContext(ctx)
	if err := tx.Where("contrato_id = ?", contratoID).Delete(&ContratoLocatario{}).Error; err != nil {
		return err
	}
	if len(vinculos) == 0 {
		return nil
	}
	return tx.Create(&vinculos).Error
}

// AnexarGarantia substitui a garantia persistida pela atual. O payload de
// edição chega sem chave primária, então gravar direto duplicaria a linha.
func (r *repositorioImpl) AnexarGarantia(ctx context.Context, contratoID uint, g *Garantia) error {
	tx := r.DB.WithContext(ctx)
	if err := tx.Where("contrato_id = ?", contratoID).Delete(&Garantia{}).Error; err != nil {
		return err
	}
	g.ID = 0
	g.ContratoID = contratoID
	return tx.Create(g).Error
}

func (r *repositorioImpl) AnexarPets(ctx context.Context, contratoID uint, pets []Pet) error {
	tx := r.DB.WithContext(ctx)
	if err := tx.Where("contrato_id = ?", contratoID).Delete(&Pet{}).Error; err != nil {
		return err
	}
	if len(pets) == 0 {
		return nil
	}
	for i := range pets {
		pets[i].ContratoID = contratoID
	}
	return tx.Create(&pets).Error
}
