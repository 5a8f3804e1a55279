package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"newsroom-api/models"
)

type SubscriptionServiceTestSuite struct {
	suite.Suite
	userRepo *fakeUserRepo
	subRepo  *fakeSubscriptionRepo
	service  SubscriptionService

	reader     *models.User
	journalist *models.User
	editor     *models.User
	publisher  *models.Publisher
}

func (suite *SubscriptionServiceTestSuite) SetupTest() {
	suite.userRepo = newFakeUserRepo()
	publisherRepo := newFakePublisherRepo()
	suite.subRepo = newFakeSubscriptionRepo(suite.userRepo)
	suite.service = NewSubscriptionService(suite.subRepo, publisherRepo, suite.userRepo)

	suite.reader = &models.User{Username: "web_reader", Email: "reader@example.com", Role: models.RoleReader}
	suite.journalist = &models.User{Username: "web_journalist", Email: "journalist@example.com", Role: models.RoleJournalist}
	suite.editor = &models.User{Username: "web_editor", Email: "editor@example.com", Role: models.RoleEditor}
	suite.NoError(suite.userRepo.Create(suite.reader))
	suite.NoError(suite.userRepo.Create(suite.journalist))
	suite.NoError(suite.userRepo.Create(suite.editor))

	suite.publisher = &models.Publisher{Name: "Daily Planet"}
	suite.NoError(publisherRepo.Create(suite.publisher))
}

func (suite *SubscriptionServiceTestSuite) TestSubscribeIsIdempotent() {
	suite.NoError(suite.service.SubscribeToPublisher(suite.reader, suite.publisher.ID))
	suite.NoError(suite.service.SubscribeToPublisher(suite.reader, suite.publisher.ID))

	suite.Len(suite.subRepo.publisherEdges, 1)

	suite.NoError(suite.service.SubscribeToJournalist(suite.reader, suite.journalist.ID))
	suite.NoError(suite.service.SubscribeToJournalist(suite.reader, suite.journalist.ID))

	suite.Len(suite.subRepo.journalistEdges, 1)
}

func (suite *SubscriptionServiceTestSuite) TestUnsubscribeIsIdempotent() {
	suite.NoError(suite.service.SubscribeToPublisher(suite.reader, suite.publisher.ID))

	suite.NoError(suite.service.UnsubscribeFromPublisher(suite.reader, suite.publisher.ID))
	suite.NoError(suite.service.UnsubscribeFromPublisher(suite.reader, suite.publisher.ID))

	suite.Empty(suite.subRepo.publisherEdges)

	// Never subscribed at all: still a no-op.
	suite.NoError(suite.service.UnsubscribeFromJournalist(suite.reader, suite.journalist.ID))
	suite.Empty(suite.subRepo.journalistEdges)
}

func (suite *SubscriptionServiceTestSuite) TestOnlyReadersManageSubscriptions() {
	for _, user := range []*models.User{suite.journalist, suite.editor} {
		err := suite.service.SubscribeToPublisher(user, suite.publisher.ID)
		suite.IsType(models.ErrorForbidden{}, err)

		err = suite.service.UnsubscribeFromPublisher(user, suite.publisher.ID)
		suite.IsType(models.ErrorForbidden{}, err)

		err = suite.service.SubscribeToJournalist(user, suite.journalist.ID)
		suite.IsType(models.ErrorForbidden{}, err)
	}
}

func (suite *SubscriptionServiceTestSuite) TestSubscribeTargetMustBeJournalist() {
	err := suite.service.SubscribeToJournalist(suite.reader, suite.editor.ID)
	suite.IsType(models.ErrorValidation{}, err)

	err = suite.service.SubscribeToJournalist(suite.reader, suite.reader.ID)
	suite.IsType(models.ErrorValidation{}, err)
}

func (suite *SubscriptionServiceTestSuite) TestMissingTargets() {
	err := suite.service.SubscribeToPublisher(suite.reader, 99)
	suite.IsType(models.ErrorNotFound{}, err)

	err = suite.service.SubscribeToJournalist(suite.reader, 99)
	suite.IsType(models.ErrorNotFound{}, err)

	err = suite.service.UnsubscribeFromPublisher(suite.reader, 99)
	suite.IsType(models.ErrorNotFound{}, err)
}

func TestSubscriptionServiceSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}
