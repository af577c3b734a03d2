package main

import (
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	"github.com/Nabielworkss/Corner-Inspirasi/internal/config"
	"github.com/Nabielworkss/Corner-Inspirasi/internal/database"
	"github.com/Nabielworkss/Corner-Inspirasi/pkg/utils"
)

var apiBaseURL string

type ResponseError struct {
	Message string `json:"message"`
}

var apiServiceBase = func() *resty.Client {
	return resty.New().
		SetBaseURL(apiBaseURL).
		SetHeader("Accept", "application/json").
		SetError(&ResponseError{}).
		OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
			if resp.StatusCode() >= 400 {
				return fmt.Errorf("%s", resp.Error().(*ResponseError).Message)
			}

			return nil
		})
}

var rootCmd = &cobra.Command{
	Use:   "corner-inspirasi",
	Short: "Corner Inspirasi CMS CLI",
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate the database and seed default categories and accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := database.Connect(cfg)
		if err != nil {
			return err
		}

		if err := database.Migrate(db); err != nil {
			return err
		}

		categories := []database.Category{
			{Name: "Nasional", Slug: "nasional"},
			{Name: "Daerah", Slug: "daerah"},
			{Name: "Ekonomi", Slug: "ekonomi"},
			{Name: "Pendidikan", Slug: "pendidikan"},
			{Name: "Lifestyle", Slug: "lifestyle"},
			{Name: "Komunitas", Slug: "komunitas"},
		}
		for i := range categories {
			result := db.Where("slug = ?", categories[i].Slug).FirstOrCreate(&categories[i])
			if result.Error != nil {
				return result.Error
			}
		}
		fmt.Printf("Categories: %d\n", len(categories))

		seedUser := func(username, email, fullName, bio, role string) error {
			var existing database.User
			if result := db.First(&existing, "email = ?", email); result.Error == nil {
				fmt.Printf("User %s already exists, skipping\n", email)
				return nil
			}

			password := utils.GenerateRandomString(12)
			hash, err := utils.HashPassword(password)
			if err != nil {
				return err
			}

			user := database.User{
				Username:     username,
				Email:        email,
				FullName:     &fullName,
				Bio:          &bio,
				PasswordHash: hash,
				Role:         role,
			}
			if result := db.Create(&user); result.Error != nil {
				return result.Error
			}

			fmt.Printf("User     : %s (%s)\n", email, role)
			fmt.Printf("Password : %s\n", password)
			return nil
		}

		if err := seedUser("superadmin", "nabielworks25@gmail.com", "Super Admin", "Administrator Corner Inspirasi", database.RoleSuperAdmin); err != nil {
			return err
		}
		return seedUser("editor1", "editor@cornerinspirasi.id", "Editor Redaksi", "Editor Corner Inspirasi", database.RoleEditor)
	},
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userRole string

var userCreateCmd = &cobra.Command{
	Use:   "create <username> <email>",
	Short: "Create a new user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, email := args[0], args[1]

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := database.Connect(cfg)
		if err != nil {
			return err
		}

		password := utils.GenerateRandomString(12)
		hash, err := utils.HashPassword(password)
		if err != nil {
			return err
		}

		user := database.User{
			Username:     username,
			Email:        email,
			PasswordHash: hash,
			Role:         userRole,
		}
		if result := db.Create(&user); result.Error != nil {
			return result.Error
		}

		fmt.Println("User ID  :", user.ID)
		fmt.Println("Email    :", user.Email)
		fmt.Println("Role     :", user.Role)
		fmt.Println("Password :", password)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the API status",
	Run: func(cmd *cobra.Command, args []string) {
		type appInfo struct {
			Message string `json:"message"`
			Version string `json:"version"`
		}

		resp, err := apiServiceBase().R().
			SetResult(&appInfo{}).
			Get("/")

		if err != nil {
			fmt.Println("Error:", err)
			return
		}

		info := resp.Result().(*appInfo)

		fmt.Println("Message :", info.Message)
		fmt.Println("Version :", info.Version)
	},
}

var articleCmd = &cobra.Command{
	Use:   "article",
	Short: "Manage articles",
}

var articleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published articles",
	Run: func(cmd *cobra.Command, args []string) {
		type articleList struct {
			Data []struct {
				ID         string `json:"id"`
				Attributes struct {
					Title string `json:"title"`
					Slug  string `json:"slug"`
					Views int    `json:"views"`
				} `json:"attributes"`
			} `json:"data"`
		}

		resp, err := apiServiceBase().R().
			SetResult(&articleList{}).
			Get("/articles")

		if err != nil {
			fmt.Println("Error:", err)
			return
		}

		list := resp.Result().(*articleList)

		for _, article := range list.Data {
			fmt.Printf("%s  %6d views  %s\n", article.ID, article.Attributes.Views, article.Attributes.Title)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", "http://localhost:3000/api", "API base URL")

	userCreateCmd.Flags().StringVar(&userRole, "role", database.RoleEditor, "user role")

	userCmd.AddCommand(userCreateCmd)
	articleCmd.AddCommand(articleListCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(articleCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
