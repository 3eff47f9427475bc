package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/gsonntag/bruinbite/entity"
	"github.com/gsonntag/bruinbite/repository"
	"github.com/gsonntag/bruinbite/utils"
)

// FeedHub pushes freshly submitted ratings to the submitter's friends.
// One subscriber set per user; a rating fans out to every connected
// friend of its author.
type FeedHub struct {
	clients    map[uint]map[*websocket.Conn]bool // userID -> connections
	broadcast  chan *entity.Rating
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	friends    *repository.FriendRepository
}

type subscription struct {
	conn   *websocket.Conn
	userID uint
}

func NewFeedHub(friends *repository.FriendRepository) *FeedHub {
	return &FeedHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan *entity.Rating, 16),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		friends:    friends,
	}
}

// Publish hands a new rating to the hub. Never blocks the submitting
// request for long; drops the event if the hub is backed up.
func (h *FeedHub) Publish(rating *entity.Rating) {
	select {
	case h.broadcast <- rating:
	default:
		log.Printf("feed hub busy, dropping rating %d", rating.ID)
	}
}

func (h *FeedHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.userID] == nil {
				h.clients[sub.userID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.userID][sub.conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.userID][sub.conn]; ok {
				delete(h.clients[sub.userID], sub.conn)
				sub.conn.Close()
			}
			h.mu.Unlock()

		case rating := <-h.broadcast:
			h.deliver(rating)
		}
	}
}

func (h *FeedHub) deliver(rating *entity.Rating) {
	friends, err := h.friends.FriendsOf(rating.UserID)
	if err != nil {
		log.Printf("feed: could not load friends of %d: %v", rating.UserID, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, friend := range friends {
		for conn := range h.clients[friend.ID] {
			if err := conn.WriteJSON(rating); err != nil {
				log.Printf("ws write error: %v", err)
				conn.Close()
				delete(h.clients[friend.ID], conn)
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades GET /ws/feed. Auth middleware has already put
// the user in the context.
func (h *FeedHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{conn: conn, userID: userID}
	h.register <- sub

	go h.drain(sub)
}

// drain keeps the read side alive so close frames are processed; the
// feed is write-only from the server's point of view.
func (h *FeedHub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}
