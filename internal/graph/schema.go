package graph

import (
	"mingle/internal/models"
	"mingle/internal/services"

	"github.com/graphql-go/graphql"
)

// NewSchema assembles the full schema once, at process start. Handlers share
// the returned value across requests.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	memberTypeType := newMemberTypeType()
	postType := newPostType()
	profileType := newProfileType(r, memberTypeType)
	userType := newUserType(r, profileType, postType, memberTypeType)

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Queries",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type: graphql.NewList(userType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.users.GetAllUsers()
				},
			},
			"profiles": &graphql.Field{
				Type: graphql.NewList(profileType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.profiles.GetAllProfiles()
				},
			},
			"posts": &graphql.Field{
				Type: graphql.NewList(postType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.posts.GetAllPosts()
				},
			},
			"memberTypes": &graphql.Field{
				Type: graphql.NewList(memberTypeType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.memberTypes.GetAllMemberTypes()
				},
			},
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.users.GetUserByID(p.Args["id"].(string))
				},
			},
			"profile": &graphql.Field{
				Type: profileType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.profiles.GetProfileByID(p.Args["id"].(string))
				},
			},
			"post": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.posts.GetPostByID(p.Args["id"].(string))
				},
			},
			"memberType": &graphql.Field{
				Type: memberTypeType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.memberTypes.GetMemberTypeByID(p.Args["id"].(string))
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutations",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"firstName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"lastName":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user := &models.User{
						FirstName: p.Args["firstName"].(string),
						LastName:  p.Args["lastName"].(string),
						Email:     p.Args["email"].(string),
					}
					if err := r.users.CreateUser(user); err != nil {
						return nil, err
					}
					return user, nil
				},
			},
			"updateUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"firstName": &graphql.ArgumentConfig{Type: graphql.String},
					"lastName":  &graphql.ArgumentConfig{Type: graphql.String},
					"email":     &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := services.UpdateUserInput{
						FirstName: optionalString(p, "firstName"),
						LastName:  optionalString(p, "lastName"),
						Email:     optionalString(p, "email"),
					}
					return r.users.UpdateUser(p.Args["id"].(string), input)
				},
			},
			"deleteUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.users.DeleteUser(p.Args["id"].(string))
				},
			},
			"createProfile": &graphql.Field{
				Type: profileType,
				Args: graphql.FieldConfigArgument{
					"avatar":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"sex":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"birthday":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"country":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"street":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"city":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"memberTypeId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"userId":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					profile := &models.Profile{
						Avatar:       p.Args["avatar"].(string),
						Sex:          p.Args["sex"].(string),
						Birthday:     p.Args["birthday"].(string),
						Country:      p.Args["country"].(string),
						Street:       p.Args["street"].(string),
						City:         p.Args["city"].(string),
						MemberTypeID: p.Args["memberTypeId"].(string),
						UserID:       p.Args["userId"].(string),
					}
					if err := r.profiles.CreateProfile(profile); err != nil {
						return nil, err
					}
					return profile, nil
				},
			},
			"updateProfile": &graphql.Field{
				Type: profileType,
				Args: graphql.FieldConfigArgument{
					"id":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"avatar":       &graphql.ArgumentConfig{Type: graphql.String},
					"sex":          &graphql.ArgumentConfig{Type: graphql.String},
					"birthday":     &graphql.ArgumentConfig{Type: graphql.String},
					"country":      &graphql.ArgumentConfig{Type: graphql.String},
					"street":       &graphql.ArgumentConfig{Type: graphql.String},
					"city":         &graphql.ArgumentConfig{Type: graphql.String},
					"memberTypeId": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := services.UpdateProfileInput{
						Avatar:       optionalString(p, "avatar"),
						Sex:          optionalString(p, "sex"),
						Birthday:     optionalString(p, "birthday"),
						Country:      optionalString(p, "country"),
						Street:       optionalString(p, "street"),
						City:         optionalString(p, "city"),
						MemberTypeID: optionalString(p, "memberTypeId"),
					}
					return r.profiles.UpdateProfile(p.Args["id"].(string), input)
				},
			},
			"createPost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"title":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"content": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"userId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					post := &models.Post{
						Title:   p.Args["title"].(string),
						Content: p.Args["content"].(string),
						UserID:  p.Args["userId"].(string),
					}
					if err := r.posts.CreatePost(post); err != nil {
						return nil, err
					}
					return post, nil
				},
			},
			"updatePost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"title":   &graphql.ArgumentConfig{Type: graphql.String},
					"content": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := services.UpdatePostInput{
						Title:   optionalString(p, "title"),
						Content: optionalString(p, "content"),
					}
					return r.posts.UpdatePost(p.Args["id"].(string), input)
				},
			},
			"updateMemberType": &graphql.Field{
				Type: memberTypeType,
				Args: graphql.FieldConfigArgument{
					"id":              &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"discount":        &graphql.ArgumentConfig{Type: graphql.Int},
					"monthPostsLimit": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := services.UpdateMemberTypeInput{
						Discount:        optionalInt(p, "discount"),
						MonthPostsLimit: optionalInt(p, "monthPostsLimit"),
					}
					return r.memberTypes.UpdateMemberType(p.Args["id"].(string), input)
				},
			},
			"subscribeTo": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"followerId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"targetId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.subs.Subscribe(p.Args["followerId"].(string), p.Args["targetId"].(string))
				},
			},
			"unsubscribeFrom": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"followerId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"targetId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.subs.Unsubscribe(p.Args["followerId"].(string), p.Args["targetId"].(string))
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

func optionalString(p graphql.ResolveParams, name string) *string {
	if v, ok := p.Args[name].(string); ok {
		return &v
	}
	return nil
}

func optionalInt(p graphql.ResolveParams, name string) *int {
	if v, ok := p.Args[name].(int); ok {
		return &v
	}
	return nil
}
