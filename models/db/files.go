package dbmodels

type FileStorage struct {
	BaseModel
	Name        string
	AnswerID    string `gorm:"type:varchar(36);index"`
	QuestionID  string `gorm:"type:varchar(36);index"`
	ContentType string
	Size        int64
}

type UploadFileInfo struct {
	AnswerID    string
	QuestionID  string
	FileName    string
	ContentType string
	Size        int64
}
