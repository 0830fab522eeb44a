package contract

// Profile entry points.

func (b *Builder) CreateProfile(name, bio, avatarURL, bannerURL string) *Transaction {
	return b.call("create_profile",
		ObjectArg(b.cfg.RegistryID),
		PureString(name),
		PureString(bio),
		PureString(avatarURL),
		PureString(bannerURL),
	)
}

func (b *Builder) UpdateProfile(profileID, name, bio, avatarURL, bannerURL string) *Transaction {
	return b.call("update_profile",
		ObjectArg(profileID),
		PureString(name),
		PureString(bio),
		PureString(avatarURL),
		PureString(bannerURL),
	)
}

func (b *Builder) UpdateSocialLinks(profileID string, links []string) *Transaction {
	return b.call("update_social_links",
		ObjectArg(profileID),
		PureStringVector(links),
	)
}

// Experience entry points. The order index is caller-supplied and used only
// for display ordering; the contract does not enforce uniqueness.

func (b *Builder) AddExperience(profileID, jobTitle, company, startDate, endDate, description string, orderIndex uint64) *Transaction {
	return b.call("add_experience",
		ObjectArg(profileID),
		PureString(jobTitle),
		PureString(company),
		PureString(startDate),
		PureString(endDate),
		PureString(description),
		PureU64(orderIndex),
	)
}

func (b *Builder) UpdateExperience(profileID string, experienceID uint64, jobTitle, company, startDate, endDate, description string, orderIndex uint64) *Transaction {
	return b.call("update_experience",
		ObjectArg(profileID),
		PureU64(experienceID),
		PureString(jobTitle),
		PureString(company),
		PureString(startDate),
		PureString(endDate),
		PureString(description),
		PureU64(orderIndex),
	)
}

func (b *Builder) RemoveExperience(profileID string, experienceID uint64) *Transaction {
	return b.call("remove_experience",
		ObjectArg(profileID),
		PureU64(experienceID),
	)
}

// Education entry points.

func (b *Builder) AddEducation(profileID, school, degree, fieldOfStudy, startDate, endDate string, orderIndex uint64) *Transaction {
	return b.call("add_education",
		ObjectArg(profileID),
		PureString(school),
		PureString(degree),
		PureString(fieldOfStudy),
		PureString(startDate),
		PureString(endDate),
		PureU64(orderIndex),
	)
}

func (b *Builder) UpdateEducation(profileID string, educationID uint64, school, degree, fieldOfStudy, startDate, endDate string, orderIndex uint64) *Transaction {
	return b.call("update_education",
		ObjectArg(profileID),
		PureU64(educationID),
		PureString(school),
		PureString(degree),
		PureString(fieldOfStudy),
		PureString(startDate),
		PureString(endDate),
		PureU64(orderIndex),
	)
}

func (b *Builder) RemoveEducation(profileID string, educationID uint64) *Transaction {
	return b.call("remove_education",
		ObjectArg(profileID),
		PureU64(educationID),
	)
}

// Certificate entry points.

func (b *Builder) AddCertificate(profileID, name, issuer, issueDate, certificateURL string, orderIndex uint64) *Transaction {
	return b.call("add_certificate",
		ObjectArg(profileID),
		PureString(name),
		PureString(issuer),
		PureString(issueDate),
		PureString(certificateURL),
		PureU64(orderIndex),
	)
}

func (b *Builder) UpdateCertificate(profileID string, certificateID uint64, name, issuer, issueDate, certificateURL string, orderIndex uint64) *Transaction {
	return b.call("update_certificate",
		ObjectArg(profileID),
		PureU64(certificateID),
		PureString(name),
		PureString(issuer),
		PureString(issueDate),
		PureString(certificateURL),
		PureU64(orderIndex),
	)
}

func (b *Builder) RemoveCertificate(profileID string, certificateID uint64) *Transaction {
	return b.call("remove_certificate",
		ObjectArg(profileID),
		PureU64(certificateID),
	)
}

// Skill entry points. Skills are removed by position in the profile's skill
// list, not by name.

func (b *Builder) AddSkill(profileID, skillName string) *Transaction {
	return b.call("add_skill",
		ObjectArg(profileID),
		PureString(skillName),
	)
}

func (b *Builder) RemoveSkill(profileID string, skillIndex uint64) *Transaction {
	return b.call("remove_skill",
		ObjectArg(profileID),
		PureU64(skillIndex),
	)
}

// Post entry points.

func (b *Builder) CreatePost(profileID, content string, imageURLs []string) *Transaction {
	return b.call("create_post",
		ObjectArg(b.cfg.RegistryID),
		ObjectArg(profileID),
		PureString(content),
		PureStringVector(imageURLs),
	)
}

func (b *Builder) DeletePost(postID string) *Transaction {
	return b.call("delete_post",
		ObjectArg(postID),
	)
}

func (b *Builder) LikePost(postID, profileID string) *Transaction {
	return b.call("like_post",
		ObjectArg(postID),
		ObjectArg(profileID),
	)
}

func (b *Builder) UnlikePost(postID, profileID string) *Transaction {
	return b.call("unlike_post",
		ObjectArg(postID),
		ObjectArg(profileID),
	)
}

func (b *Builder) AddComment(postID, profileID, content string) *Transaction {
	return b.call("add_comment",
		ObjectArg(postID),
		ObjectArg(profileID),
		PureString(content),
	)
}

// Admin entry points. Possession of the admin capability object is the only
// authorization check; there is no separate role lookup.

func (b *Builder) VerifyProfile(adminCapID, profileID string) *Transaction {
	return b.call("verify_profile",
		ObjectArg(adminCapID),
		ObjectArg(profileID),
	)
}

func (b *Builder) UnverifyProfile(adminCapID, profileID string) *Transaction {
	return b.call("unverify_profile",
		ObjectArg(adminCapID),
		ObjectArg(profileID),
	)
}
