// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -typed -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -typed -source=./catalog.go -destination=../mocks/mock_catalog_repository.go -package=mocks CatalogRepositoryIface
//go:generate mockgen -typed -source=./membership.go -destination=../mocks/mock_membership_repository.go -package=mocks MembershipRepositoryIface
//go:generate mockgen -typed -source=./join_request.go -destination=../mocks/mock_join_request_repository.go -package=mocks JoinRequestRepositoryIface
//go:generate mockgen -typed -source=./invitation.go -destination=../mocks/mock_invitation_repository.go -package=mocks InvitationRepositoryIface
//go:generate mockgen -typed -source=./audit_log.go -destination=../mocks/mock_audit_log_repository.go -package=mocks AuditLogRepositoryIface
//go:generate mockgen -typed -source=./account.go -destination=../mocks/mock_account_repository.go -package=mocks AccountRepositoryIface
//go:generate mockgen -typed -source=./stats.go -destination=../mocks/mock_stats_repository.go -package=mocks StatsRepositoryIface
