package locatario

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, l *Locatario) error
	BuscarPorID(db *gorm.DB, id uint) (*Locatario, error)
	ListarTodos(db *gorm.DB) ([]Locatario, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, l *Locatario) error {
	return db.Save(l).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Locatario, error) {
	var l Locatario
	err := db.First(&l, id).Error
	return &l, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Locatario, error) {
	var locatarios []Locatario
	err := db.Order("nome").Find(&locatarios).Error
	return locatarios, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Locatario{}, id).Error
}
