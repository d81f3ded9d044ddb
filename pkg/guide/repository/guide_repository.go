package repository

import "mycolog/entities"

type GuideRepository interface {
	CreateDoc(d *entities.GuideDocument) error
	BulkInsertChunks(cs []entities.GuideChunk) error
	AllChunks() ([]entities.GuideChunk, error)
	DocsByIDs(ids []uint) (map[uint]entities.GuideDocument, error)
	ListDocs() ([]entities.GuideDocument, error)
}
