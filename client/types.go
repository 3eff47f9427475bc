package client

import "time"

// Date is one calendar day, the way the menu endpoints address it.
type Date struct {
	Year  int
	Month int
	Day   int
}

type DiningHall struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"` // stable slug
	DisplayName string  `json:"display_name"`
	Rating      float64 `json:"rating"`
	ReviewCount int64   `json:"reviewCount"`
}

type Dish struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	Location      string  `json:"location"`
	HallID        uint    `json:"hall_id"`
	AverageRating float64 `json:"average_rating"` // 0 means unrated
}

type Menu struct {
	Hall   DiningHall `json:"hall"`
	Dishes []Dish     `json:"dishes"`
}

type Rating struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	DishID    uint      `json:"dish_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	Dish      *Dish     `json:"dish"`
	User      *User     `json:"user"`
}

type User struct {
	ID             uint    `json:"ID"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	ProfilePicture *string `json:"profile_picture"`
	IsAdmin        bool    `json:"is_admin"`
}

type FriendRequest struct {
	ID       uint   `json:"id"`
	FromID   uint   `json:"from_id"`
	ToID     uint   `json:"to_id"`
	Status   string `json:"status"`
	FromUser *User  `json:"from_user,omitempty"`
	ToUser   *User  `json:"to_user,omitempty"`
}

type HallRecommendation struct {
	Hall      DiningHall `json:"hall"`
	Score     float64    `json:"score"`
	Basis     string     `json:"basis"`
	TopDishes []Dish     `json:"top_dishes"`
}
