package imovel

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, i *Imovel) error
	BuscarPorID(db *gorm.DB, id uint) (*Imovel, error)
	ListarTodos(db *gorm.DB) ([]Imovel, error)
	ListarDisponiveis(db *gorm.DB) ([]Imovel, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, i *Imovel) error {
	return db.Save(i).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Imovel, error) {
	var i Imovel
	err := db.First(&i, id).Error
	return &i, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Imovel, error) {
	var imoveis []Imovel
	err := db.Find(&imoveis).Error
	return imoveis, err
}

func (r *repositoryImpl) ListarDisponiveis(db *gorm.DB) ([]Imovel, error) {
	var imoveis []Imovel
	err := db.Where("disponivel = ?", true).Find(&imoveis).Error
	return imoveis, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Imovel{}, id).Error
}
