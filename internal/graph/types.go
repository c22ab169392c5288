package graph

import (
	"errors"
	"fmt"

	"mingle/internal/apperrors"
	"mingle/internal/models"
	"mingle/internal/services"

	"github.com/graphql-go/graphql"
)

// Resolver bundles the services the schema resolves against. Each relation
// field maps to exactly one typed resolver method, so the set of lookups a
// query triggers is fixed by its field shape.
type Resolver struct {
	users       *services.UserService
	profiles    *services.ProfileService
	posts       *services.PostService
	memberTypes *services.MemberTypeService
	subs        *services.SubscriptionService
}

// NewResolver creates a new Resolver.
func NewResolver(
	users *services.UserService,
	profiles *services.ProfileService,
	posts *services.PostService,
	memberTypes *services.MemberTypeService,
	subs *services.SubscriptionService,
) *Resolver {
	return &Resolver{
		users:       users,
		profiles:    profiles,
		posts:       posts,
		memberTypes: memberTypes,
		subs:        subs,
	}
}

// userFromSource unwraps the parent user regardless of whether the list
// resolver produced values or the singular resolver produced a pointer.
func userFromSource(source interface{}) (*models.User, error) {
	switch u := source.(type) {
	case *models.User:
		return u, nil
	case models.User:
		return &u, nil
	default:
		return nil, fmt.Errorf("unexpected source type %T for user field", source)
	}
}

func profileFromSource(source interface{}) (*models.Profile, error) {
	switch pr := source.(type) {
	case *models.Profile:
		return pr, nil
	case models.Profile:
		return &pr, nil
	default:
		return nil, fmt.Errorf("unexpected source type %T for profile field", source)
	}
}

// newMemberTypeType builds the MemberType object.
func newMemberTypeType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "MemberType",
		Fields: graphql.Fields{
			"id":              &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"discount":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"monthPostsLimit": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})
}

// newPostType builds the Post object.
func newPostType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"content": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"userId":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})
}

// newProfileType builds the Profile object, including the memberType relation.
func newProfileType(r *Resolver, memberTypeType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Profile",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"avatar":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"sex":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"birthday":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"country":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"street":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"city":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"memberTypeId": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"userId":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"memberType": &graphql.Field{
				Type: memberTypeType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					profile, err := profileFromSource(p.Source)
					if err != nil {
						return nil, err
					}
					return r.memberTypes.GetMemberTypeByID(profile.MemberTypeID)
				},
			},
		},
	})
}

// newUserType builds the User object. The relation fields reference the type
// itself, so the field set is a thunk evaluated after construction.
func newUserType(r *Resolver, profileType, postType, memberTypeType *graphql.Object) *graphql.Object {
	var userType *graphql.Object
	userType = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: (graphql.FieldsThunk)(func() graphql.Fields {
			return graphql.Fields{
				"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
				"firstName": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"lastName":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"subscribedToUserIds": &graphql.Field{
					Type: graphql.NewNonNull(graphql.NewList(graphql.String)),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						user, err := userFromSource(p.Source)
						if err != nil {
							return nil, err
						}
						if user.SubscribedToUserIDs == nil {
							if err := r.subs.AttachFollowerIDs(user); err != nil {
								return nil, err
							}
						}
						return user.SubscribedToUserIDs, nil
					},
				},
				"posts": &graphql.Field{
					Type: graphql.NewList(postType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						user, err := userFromSource(p.Source)
						if err != nil {
							return nil, err
						}
						return r.posts.GetPostsByUserID(user.ID)
					},
				},
				"profile": &graphql.Field{
					Type: profileType,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						user, err := userFromSource(p.Source)
						if err != nil {
							return nil, err
						}
						profile, err := r.profiles.GetProfileByUserID(user.ID)
						if err != nil {
							if errors.Is(err, apperrors.ErrNotFound) {
								return nil, nil
							}
							return nil, err
						}
						return profile, nil
					},
				},
				"memberType": &graphql.Field{
					Type: memberTypeType,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						user, err := userFromSource(p.Source)
						if err != nil {
							return nil, err
						}
						profile, err := r.profiles.GetProfileByUserID(user.ID)
						if err != nil {
							if errors.Is(err, apperrors.ErrNotFound) {
								return nil, nil
							}
							return nil, err
						}
						return r.memberTypes.GetMemberTypeByID(profile.MemberTypeID)
					},
				},
				// userSubscribedTo: the users this user is subscribed to,
				// i.e. everyone whose follower list contains this user's id.
				"userSubscribedTo": &graphql.Field{
					Type: graphql.NewList(userType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						user, err := userFromSource(p.Source)
						if err != nil {
							return nil, err
						}
						return r.subs.Following(user.ID)
					},
				},
				// subscribedToUser: this user's followers, i.e. the members
				// of their own subscribedToUserIds list.
				"subscribedToUser": &graphql.Field{
					Type: graphql.NewList(userType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						user, err := userFromSource(p.Source)
						if err != nil {
							return nil, err
						}
						return r.subs.Followers(user.ID)
					},
				},
			}
		}),
	})
	return userType
}
