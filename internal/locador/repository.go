package locador

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, l *Locador) error
	BuscarPorID(db *gorm.DB, id uint) (*Locador, error)
	ListarTodos(db *gorm.DB) ([]Locador, error)
	ListarAtivos(db *gorm.DB) ([]Locador, error)
	Deletar(db *gorm.DB, id uint) error

	SalvarConta(db *gorm.DB, c *ContaBancaria) error
	ListarContas(db *gorm.DB, locadorID uint) ([]ContaBancaria, error)
	DeletarConta(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, l *Locador) error {
	return db.Save(l).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Locador, error) {
	var l Locador
	err := db.Preload("Contas").First(&l, id).Error
	return &l, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Locador, error) {
	var locadores []Locador
	err := db.Find(&locadores).Error
	return locadores, err
}

func (r *repositoryImpl) ListarAtivos(db *gorm.DB) ([]Locador, error) {
	var locadores []Locador
	err := db.Where("ativo = ?", true).Order("nome").Find(&locadores).Error
	return locadores, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Locador{}, id).Error
}

func (r *repositoryImpl) SalvarConta(db *gorm.DB, c *ContaBancaria) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) ListarContas(db *gorm.DB, locadorID uint) ([]ContaBancaria, error) {
	var contas []ContaBancaria
	err := db.Where("locador_id = ?", locadorID).Find(&contas).Error
	return contas, err
}

func (r *repositoryImpl) DeletarConta(db *gorm.DB, id uint) error {
	return db.Delete(&ContaBancaria{}, id).Error
}
