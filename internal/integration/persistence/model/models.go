package model

// All returns every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&ProfileModel{},
		&RefreshTokenModel{},
		&PasswordResetTokenModel{},
		&PetModel{},
		&HealthRecordModel{},
		&PostModel{},
		&PostLikeModel{},
		&CommentModel{},
		&PetServiceModel{},
		&ServiceReviewModel{},
		&ConsentModel{},
		&AuditLogModel{},
		&EmailQueueModel{},
	}
}
